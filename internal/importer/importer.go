package importer

import (
	"io"

	"github.com/rhasan/estatedesk/internal/ledger"
)

type Source string

const (
	SourceBankStatement Source = "bank"
)

type Parser interface {
	Parse(r io.Reader) ([]ledger.StatementRow, error)
}
