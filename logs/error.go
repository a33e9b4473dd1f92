package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span in ctx onto err so a failure can be matched with its logs.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok || span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
