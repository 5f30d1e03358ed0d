package config

const defaultCurrencySymbol = "$"

type AppConfig struct {
	Symbol string `yaml:"currency-symbol"`
}

func (s *AppConfig) CurrencySymbol() string {
	if s.Symbol == "" {
		return defaultCurrencySymbol
	}
	return s.Symbol
}
