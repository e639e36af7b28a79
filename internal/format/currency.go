package format

import (
	"strings"

	money "github.com/Rhymond/go-money"
	"go.uber.org/zap"
)

// defaultCurrency подставляется вместо невалидного или неподдерживаемого кода.
const defaultCurrency = "USD"

// Поддерживаемые коды валют; набор фиксирован и не расширяется извне.
var supportedCurrencies = map[string]struct{}{
	"USD": {}, "EUR": {}, "RUB": {}, "GBP": {}, "JPY": {}, "CNY": {}, "KZT": {},
	"UAH": {}, "BYN": {}, "PLN": {}, "INR": {}, "BRL": {}, "CAD": {}, "AUD": {},
}

// Currency форматирует денежные суммы по правилам валюты: символ,
// позиция, группировка разрядов и число знаков после запятой.
type Currency struct {
	log *zap.Logger
}

func NewCurrency(log *zap.Logger) *Currency {
	return &Currency{log: log}
}

// Format всегда возвращает строку; ошибок наружу не отдаёт.
// Невалидный код валюты даёт предупреждение в лог и подмену на USD.
func (c *Currency) Format(amount float64, code string) string {
	if !isSupported(code) {
		c.log.Warn("invalid or unsupported currency, using fallback",
			zap.String("currency", code),
			zap.String("fallback", defaultCurrency))
		code = defaultCurrency
	}
	return money.NewFromFloat(amount, strings.ToUpper(code)).Display()
}

// isSupported: ровно три латинские буквы без учёта регистра, и код входит
// в фиксированный набор.
func isSupported(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	_, ok := supportedCurrencies[strings.ToUpper(code)]
	return ok
}
