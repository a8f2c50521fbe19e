package cmd

// Config carries the file-system locations of the flat data sources.
type Config struct {
	OrdersCSVPath    string
	CustomersCSVPath string
}
