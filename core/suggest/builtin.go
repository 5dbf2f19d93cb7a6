package suggest

// builtinEntries backs the portal when no catalog file is configured or
// the configured one cannot be read.
var builtinEntries = []Entry{
	{Subject: "VPN Access", Team: "Network"},
	{Subject: "Password Reset", Team: "Apps Support"},
	{Subject: "Email Not Working", Team: "Apps Support"},
	{Subject: "New Hire Equipment", Team: "Desktop Support"},
	{Subject: "Printer Not Working", Team: "Desktop Support"},
	{Subject: "Shared Drive Access", Team: "Network"},
	{Subject: "Software Installation", Team: "Apps Support"},
	{Subject: "Phone Issue", Team: "Telecom"},
}

func BuiltinCatalog() *Index {
	return NewIndex(builtinEntries)
}
