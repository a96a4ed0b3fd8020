package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/procost/evm"
)

// SummaryMarkdown renders the executive summary. Money fields use the
// grouped two-decimal currency format, ratio fields three decimals, and any
// missing value the literal "NA" token.
func SummaryMarkdown(s *evm.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("EVM Executive Summary")
	doc.PlainText(fmt.Sprintf("BAC (%s): %s", s.BACSource, s.BAC))

	doc.H2("Cumulative to date")
	doc.Table(md.TableSet{
		Header: []string{"PV_cum", "EV_cum", "AC_cum", "SV", "CV"},
		Rows: [][]string{{
			s.CumPV.String(), s.CumEV.String(), s.CumAC.String(),
			s.SV.String(), s.CV.String(),
		}},
	})

	doc.H2("Performance indices")
	doc.Table(md.TableSet{
		Header: []string{"SPI", "CPI"},
		Rows:   [][]string{{s.SPI.String(), s.CPI.String()}},
	})

	doc.H2("Forecasts")
	coEAC, coETC, coVAC := s.CostOnly.Strings()
	csEAC, csETC, csVAC := s.CostSchedule.Strings()
	doc.Table(md.TableSet{
		Header: []string{"Model", "EAC", "ETC", "VAC"},
		Rows: [][]string{
			{"Cost only (CPI)", coEAC, coETC, coVAC},
			{"Cost x schedule (CPI*SPI)", csEAC, csETC, csVAC},
		},
	})

	return doc.String()
}
