package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type EnvironmentVariable struct {
	DB_POSTGRESQL_DSN  string
	ENABLE_AUTOMIGRATE bool

	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string

	// "lite" (shared infrastructure tier) or "studio" (premium tier).
	DEPLOYMENT_BRAND string

	// Desktop-packaged builds always talk to the bundled local relay.
	DESKTOP_MODE bool

	// Comma separated "label=https://host" entries.
	RELAY_SERVERS     []string
	LOCAL_RELAY_URL   string
	DEFAULT_RELAY_URL string

	SOLVER_API_URL        string
	SOLVER_PROJECT_ID     string
	MASTER_SOLVER_API_KEY string

	JWT_SECRET         []byte
	ALLOWED_CORS_HOSTS []string

	OPENROUTER_BASE_URL string
	OPENROUTER_API_KEY  string
	PROMPT_MODEL        string

	TOYYIBPAY_BASE_URL      string
	TOYYIBPAY_SECRET_KEY    string
	TOYYIBPAY_CATEGORY_CODE string

	// Bootstrap operator account, created on first boot when set.
	ADMIN_USERNAME string
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			fmt.Printf("Missing SYSENV: %s\n", envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Bool:
			parsed, err := strconv.ParseBool(envValue)
			if err == nil {
				v.Field(i).SetBool(parsed)
			}
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.Uint8 {
				v.Field(i).SetBytes([]byte(envValue))
				continue
			}
			parts := strings.Split(envValue, ",")
			values := make([]string, 0, len(parts))
			for _, part := range parts {
				part = strings.TrimSpace(part)
				if part != "" {
					values = append(values, part)
				}
			}
			v.Field(i).Set(reflect.ValueOf(values))
		}
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
