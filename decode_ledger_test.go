package evm

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

const sampleCSV = `Date,PV,EV,AC
2024-01-01,1000,900,950
2024-02-01,1000,1100,1000
`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleCSV), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger returned error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("got %d entries, want 2", l.Len())
	}
	last, _ := l.Last()
	if !last.EV.Equal(USD(1100)) {
		t.Errorf("last EV = %s, want 1100", last.EV.Plain())
	}
}

func TestDecodeLedger_BOM(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader("\uFEFF"+sampleCSV), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger with BOM returned error: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("got %d entries, want 2", l.Len())
	}
}

func TestDecodeLedger_ColumnsAnyOrder(t *testing.T) {
	in := "AC,Project,EV,PV,Date\n950,alpha,900,1000,2024-01-01\n"
	l, err := DecodeLedger(strings.NewReader(in), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger returned error: %v", err)
	}
	e, _ := l.Last()
	if !e.PV.Equal(USD(1000)) || !e.EV.Equal(USD(900)) || !e.AC.Equal(USD(950)) {
		t.Errorf("got PV=%s EV=%s AC=%s, want 1000/900/950", e.PV.Plain(), e.EV.Plain(), e.AC.Plain())
	}
}

func TestDecodeLedger_DuplicateColumn(t *testing.T) {
	in := "Date,PV,PV,EV,AC\n2024-01-01,111,222,900,950\n"
	l, err := DecodeLedger(strings.NewReader(in), "USD")
	if err != nil {
		t.Fatalf("DecodeLedger returned error: %v", err)
	}
	e, _ := l.Last()
	// last occurrence of a duplicated column wins
	if !e.PV.Equal(USD(222)) {
		t.Errorf("PV = %s, want 222", e.PV.Plain())
	}
}

func TestDecodeLedger_MissingColumns(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader("Date,PV\n2024-01-01,1\n"), "USD")
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("got %v, want ErrMissingColumns", err)
	}
	for _, name := range []string{"EV", "AC"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing column %s", err, name)
		}
	}
}

func TestDecodeLedger_NoHeader(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader(""), "USD"); !errors.Is(err, ErrNoHeader) {
		t.Errorf("got %v, want ErrNoHeader", err)
	}
}

// TestDecodeLedger_BadRowAborts asserts the all-or-nothing policy: one bad
// row fails the whole decode with a row-addressed diagnostic.
func TestDecodeLedger_BadRowAborts(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantRow   int
		wantField string
	}{
		{
			"bad date",
			"Date,PV,EV,AC\n2024-01-01,1,1,1\nnot-a-date,1,1,1\n",
			3, "Date",
		},
		{
			"empty amount",
			"Date,PV,EV,AC\n2024-01-01,1,,1\n",
			2, "EV",
		},
		{
			"non numeric amount",
			"Date,PV,EV,AC\n2024-01-01,1,1,1\n2024-02-01,oops,1,1\n",
			3, "PV",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.in), "USD")
			var re *RowError
			if !errors.As(err, &re) {
				t.Fatalf("got %v, want a *RowError", err)
			}
			if re.Row != tc.wantRow || re.Field != tc.wantField {
				t.Errorf("got row %d field %s, want row %d field %s", re.Row, re.Field, tc.wantRow, tc.wantField)
			}
		})
	}
}

// TestDecodeLedger_OrderIndependent asserts that shuffling the data rows
// yields the same sorted ledger: sorting happens inside the decoder.
func TestDecodeLedger_OrderIndependent(t *testing.T) {
	rows := []string{
		"2024-01-01,1000,900,950",
		"2024-02-01,1000,1100,1000",
		"2024-03-01,1200,1150,1180",
		"2024-04-01,900,900,910",
	}
	want, err := DecodeLedger(strings.NewReader("Date,PV,EV,AC\n"+strings.Join(rows, "\n")+"\n"), "USD")
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		shuffled := make([]string, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := DecodeLedger(strings.NewReader("Date,PV,EV,AC\n"+strings.Join(shuffled, "\n")+"\n"), "USD")
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != want.Len() {
			t.Fatalf("got %d entries, want %d", got.Len(), want.Len())
		}
		we := make([]Entry, 0, want.Len())
		for e := range want.Entries() {
			we = append(we, e)
		}
		j := 0
		for e := range got.Entries() {
			if e.Date != we[j].Date || !e.PV.Equal(we[j].PV) {
				t.Fatalf("shuffled decode differs at entry %d: %v vs %v", j, e, we[j])
			}
			j++
		}
	}
}
