package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Secrets struct {
	Db      DbSecrets     `json:"db" mapstructure:"db"`
	Port    int           `json:"port" mapstructure:"port"`
	Scoring ScoringConfig `json:"scoring" mapstructure:"scoring"`
}

type DbSecrets struct {
	Host      string `json:"host" mapstructure:"host"`
	User      string `json:"user" mapstructure:"user"`
	Port      string `json:"port" mapstructure:"port"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	EnableSsl bool   `json:"enableSsl" mapstructure:"enablessl"`
}

type ScoringConfig struct {
	// number of most recent daily prices loaded per stock
	PriceLookback    int           `json:"priceLookback" mapstructure:"pricelookback"`
	PriceCacheTtl    time.Duration `json:"priceCacheTtl" mapstructure:"pricecachettl"`
	PriceLoadWorkers int           `json:"priceLoadWorkers" mapstructure:"priceloadworkers"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv("FACTORRANK_ENV")) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadSecrets reads the secrets file for the current environment.
// any key can be overridden with FACTORRANK_<SECTION>_<KEY>, e.g.
// FACTORRANK_DB_PASSWORD
func LoadSecrets() (*Secrets, error) {
	return loadSecretsFrom(secretsFile())
}

func loadSecretsFrom(path string) (*Secrets, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("FACTORRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3009)
	v.SetDefault("db.port", "5432")
	v.SetDefault("scoring.pricelookback", 90)
	v.SetDefault("scoring.pricecachettl", 5*time.Minute)
	v.SetDefault("scoring.priceloadworkers", 8)

	// env overrides only take effect for keys viper knows about
	for _, key := range []string{"db.host", "db.user", "db.password", "db.database", "db.enablessl"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	secrets := Secrets{}
	if err := v.Unmarshal(&secrets); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &secrets, nil
}
