package investor

import (
	"fmt"
	"testing"
)

// TestComputeRatios_WorkedExample checks every ratio of the apple fixture
// against its closed-form value.
func TestComputeRatios_WorkedExample(t *testing.T) {
	_, f := apple()
	got := ComputeRatios(f)

	testCases := []struct {
		name string
		got  Amount
		want Amount
	}{
		{name: "P/E", got: got.PE, want: A(150).Div(A(500_000))},
		{name: "P/S", got: got.PS, want: A(150).Div(A(2_000_000))},
		{name: "P/B", got: got.PB, want: A(150).Div(A(3_000_000))},
		{name: "ND/EBITDA", got: got.NDEBITDA, want: A(0.1)},
		{name: "ROE", got: got.ROE, want: A(500_000).Div(A(1_500_000))},
		{name: "ROA", got: got.ROA, want: A(500_000).Div(A(3_000_000))},
		{name: "L/A", got: got.LA, want: A(2_000_000).Div(A(3_000_000))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}

	// the two-decimal presentation used by reports.
	if s := got.PE.StringFixed(2); s != "0.00" {
		t.Errorf("P/E presentation = %q, want %q", s, "0.00")
	}
	if s := got.ROE.StringFixed(2); s != "0.33" {
		t.Errorf("ROE presentation = %q, want %q", s, "0.33")
	}
	if s := got.ROA.StringFixed(2); s != "0.17" {
		t.Errorf("ROA presentation = %q, want %q", s, "0.17")
	}
	if s := got.LA.StringFixed(2); s != "0.67" {
		t.Errorf("L/A presentation = %q, want %q", s, "0.67")
	}
}

// TestComputeRatios_Unknowns checks that a missing figure or a zero
// denominator yields an unknown ratio, never an error.
func TestComputeRatios_Unknowns(t *testing.T) {
	testCases := []struct {
		name  string
		f     Financial
		check func(Ratios) Amount
	}{
		{
			name:  "unknown EBITDA",
			f:     Financial{NetDebt: A(100)},
			check: func(r Ratios) Amount { return r.NDEBITDA },
		},
		{
			name:  "unknown net debt",
			f:     Financial{EBITDA: A(100)},
			check: func(r Ratios) Amount { return r.NDEBITDA },
		},
		{
			name:  "zero equity",
			f:     Financial{NetProfit: A(100), Equity: A(0)},
			check: func(r Ratios) Amount { return r.ROE },
		},
		{
			name:  "zero assets",
			f:     Financial{Liabilities: A(100), Assets: A(0)},
			check: func(r Ratios) Amount { return r.LA },
		},
		{
			name:  "nothing reported at all",
			f:     Financial{},
			check: func(r Ratios) Amount { return r.PE },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(ComputeRatios(tc.f)); got.Known() {
				t.Errorf("ratio = %v, want unknown", got)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	testCases := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{in: "ND/EBITDA", want: NetDebtToEBITDA},
		{in: "nd/ebitda", want: NetDebtToEBITDA},
		{in: "ROE", want: ReturnOnEquity},
		{in: "roa", want: ReturnOnAssets},
		{in: " roe ", want: ReturnOnEquity},
		{in: "P/E", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMetric(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMetric(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMetric(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestRank_ROE ranks three companies by ROE, one of which never reported
// its equity: it is left out entirely, not shown as unknown.
func TestRank_ROE(t *testing.T) {
	financials := []Financial{
		{Ticker: "LOW", NetProfit: A(300_000), Equity: A(1_000_000)},
		{Ticker: "HIGH", NetProfit: A(500_000), Equity: A(1_000_000)},
		{Ticker: "SHY", NetProfit: A(400_000)},
	}
	got := Rank(financials, ReturnOnEquity)
	if len(got) != 2 {
		t.Fatalf("Rank() returned %d entries, want 2", len(got))
	}
	if got[0].Ticker != "HIGH" || got[1].Ticker != "LOW" {
		t.Errorf("Rank() order = [%s %s], want [HIGH LOW]", got[0].Ticker, got[1].Ticker)
	}
	if got[0].Value.String() != "0.5" || got[1].Value.String() != "0.3" {
		t.Errorf("Rank() values = [%s %s], want [0.5 0.3]", got[0].Value, got[1].Value)
	}
}

// TestRank_Eligibility checks who takes part in a ranking: a zero numerator
// ranks (at the bottom), while unknown figures and zero denominators do not.
func TestRank_Eligibility(t *testing.T) {
	financials := []Financial{
		{Ticker: "ZERO", NetDebt: A(0), EBITDA: A(1000)},       // ranks with value 0
		{Ticker: "NODEN", NetDebt: A(100)},                     // unknown EBITDA: out
		{Ticker: "NONUM", EBITDA: A(1000)},                     // unknown net debt: out
		{Ticker: "DIVZ", NetDebt: A(100), EBITDA: A(0)},        // zero EBITDA: out
		{Ticker: "PLAIN", NetDebt: A(2000), EBITDA: A(1000)},   // value 2
		{Ticker: "NEG", NetDebt: A(-500), EBITDA: A(1000)},     // value -0.5
	}
	got := Rank(financials, NetDebtToEBITDA)

	want := []string{"PLAIN", "ZERO", "NEG"}
	if len(got) != len(want) {
		t.Fatalf("Rank() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Ticker != want[i] {
			t.Errorf("Rank()[%d] = %s, want %s", i, got[i].Ticker, want[i])
		}
	}
}

func TestRank_TieBreakAndLimit(t *testing.T) {
	var financials []Financial
	// twelve companies sharing the same ROA, plus one better one.
	for i := 0; i < 12; i++ {
		financials = append(financials, Financial{
			Ticker:    fmt.Sprintf("T%02d", i),
			NetProfit: A(100),
			Assets:    A(1000),
		})
	}
	financials = append(financials, Financial{Ticker: "BEST", NetProfit: A(900), Assets: A(1000)})

	got := Rank(financials, ReturnOnAssets)
	if len(got) != rankSize {
		t.Fatalf("Rank() returned %d entries, want %d", len(got), rankSize)
	}
	if got[0].Ticker != "BEST" {
		t.Errorf("Rank()[0] = %s, want BEST", got[0].Ticker)
	}
	// ties run in ticker order.
	for i := 1; i < len(got); i++ {
		want := fmt.Sprintf("T%02d", i-1)
		if got[i].Ticker != want {
			t.Errorf("Rank()[%d] = %s, want %s", i, got[i].Ticker, want)
		}
	}
}

func TestTopTen(t *testing.T) {
	s := testStore(t)
	ca, fa := apple() // ROE = 0.3333...
	cm, fm := moon()  // ROE = 0.3
	mustCreate(t, s, ca, fa)
	mustCreate(t, s, cm, fm)
	mustCreate(t, s, Company{Ticker: "NONE", Name: "No Figures Inc."}, Financial{})

	got, err := s.TopTen(ReturnOnEquity)
	if err != nil {
		t.Fatalf("TopTen() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("TopTen() returned %d entries, want 2", len(got))
	}
	if got[0].Ticker != "AAPL" || got[1].Ticker != "MOON" {
		t.Errorf("TopTen() order = [%s %s], want [AAPL MOON]", got[0].Ticker, got[1].Ticker)
	}
}
