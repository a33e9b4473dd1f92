package configs

// Configurable values can be set from config files.
// ConfigExpr names the config path the value is read from.
type Configurable interface {
	ConfigExpr() string
}
