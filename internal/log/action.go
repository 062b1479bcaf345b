package log

type Action = string

const (
	AddBook        Action = "AddBook"
	RemoveBook            = "RemoveBook"
	AddReader             = "AddReader"
	RemoveReader          = "RemoveReader"
	LendBook              = "LendBook"
	AcceptReturn          = "AcceptReturn"
	ExportCatalog         = "ExportCatalog"
	ImportCatalog         = "ImportCatalog"
	ReadCommand           = "ReadCommand"
)
