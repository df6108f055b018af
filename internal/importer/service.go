package importer

import (
	"fmt"
	"io"

	"github.com/rhasan/estatedesk/internal/importer/bankstmt"
	"github.com/rhasan/estatedesk/internal/ledger"
)

type Service struct {
	bankParser Parser
}

func NewService() *Service {
	return &Service{
		bankParser: bankstmt.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]ledger.StatementRow, error) {
	var parser Parser

	switch source {
	case SourceBankStatement:
		parser = s.bankParser
	default:
		return nil, fmt.Errorf("unknown statement source: %s", source)
	}

	return parser.Parse(r)
}
