package cmds

import (
	"fmt"
	"reflect"
)

// Command is a flag or an action. Its function takes arguments from the words
// following the command name. Pointer parameters are optional.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn, which returns nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	if fnType.NumOut() > 1 ||
		fnType.NumOut() == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("%T: must return nothing or an error", fn))
	}
	return &Command{
		Func: fnValue,
	}
}

// call consumes the arguments of c from args and returns the rest.
func (c *Command) call(args []string) ([]string, error) {
	fnType := c.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := c.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}
