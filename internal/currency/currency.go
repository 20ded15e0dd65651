package currency

// Currency is one supported ISO-4217 currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// table is the built-in currency set. The remote list can extend the set of
// valid codes at runtime but symbols always come from here.
var table = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CAD", Symbol: "$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "$", Name: "Australian Dollar"},
	{Code: "NZD", Symbol: "$", Name: "New Zealand Dollar"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	{Code: "RON", Symbol: "lei", Name: "Romanian Leu"},
	{Code: "BGN", Symbol: "лв", Name: "Bulgarian Lev"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "HKD", Symbol: "$", Name: "Hong Kong Dollar"},
	{Code: "SGD", Symbol: "$", Name: "Singapore Dollar"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "EGP", Symbol: "£", Name: "Egyptian Pound"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	{Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	{Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	{Code: "PEN", Symbol: "S/", Name: "Peruvian Sol"},
}

var symbols = func() map[string]string {
	out := make(map[string]string, len(table))
	for _, c := range table {
		out[c.Code] = c.Symbol
	}
	return out
}()

// Symbol returns the display symbol for an ISO code. Unknown codes render
// without a symbol rather than failing the document.
func Symbol(code string) string {
	return symbols[code]
}

// Known reports whether the code is in the built-in table.
func Known(code string) bool {
	_, ok := symbols[code]
	return ok
}

// Builtin returns a copy of the built-in currency table.
func Builtin() []Currency {
	out := make([]Currency, len(table))
	copy(out, table)
	return out
}
