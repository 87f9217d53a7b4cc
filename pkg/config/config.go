package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultConnectionName nombre del connection string que usan ambos flujos de fulfillment.
const DefaultConnectionName = "Default"

// ErrMissingConnectionString se devuelve cuando el connection string pedido no está configurado.
// domain.ErrConfiguration lo envuelve para la capa de aplicación.
type ErrMissingConnectionString struct {
	Name string
}

func (e ErrMissingConnectionString) Error() string {
	return fmt.Sprintf("Connection string '%s' not found in configuration", e.Name)
}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	DB          DBConfig
	HTTP        HTTPConfig
	Fulfillment FulfillmentConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig connection strings por nombre (ConnectionStrings:Default, etc.).
type DBConfig struct {
	ConnectionStrings map[string]string
}

// ConnectionString devuelve el connection string con ese nombre o ErrMissingConnectionString si está vacío.
func (c DBConfig) ConnectionString(name string) (string, error) {
	dsn := strings.TrimSpace(c.ConnectionStrings[name])
	if dsn == "" {
		return "", ErrMissingConnectionString{Name: name}
	}
	return dsn, nil
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FulfillmentConfig parámetros de los dos flujos de recepción en bodega.
type FulfillmentConfig struct {
	Timeout   time.Duration // tope por llamada, incluye conexión, transacción y commit
	Procedure string        // rutina del servidor para el flujo stored-procedure
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, CONNECTIONSTRINGS_DEFAULT, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", ":", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	timeout, err := getDuration(v, "FULFILLMENT_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	defaultDSN := getString(v, "CONNECTIONSTRINGS_DEFAULT", "")
	if defaultDSN == "" {
		// Alias habitual en despliegues (Supabase, Heroku, docker-compose).
		defaultDSN = getString(v, "DATABASE_URL", "")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "warehouse-fulfillment"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			ConnectionStrings: map[string]string{
				DefaultConnectionName: defaultDSN,
			},
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Fulfillment: FulfillmentConfig{
			Timeout:   timeout,
			Procedure: getString(v, "FULFILLMENT_PROCEDURE", "add_product_to_warehouse"),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s debe ser positivo", key)
	}
	return d, nil
}
