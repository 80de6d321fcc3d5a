package payroll

import (
	"fmt"
	"strconv"
	"time"
)

const (
	companyName    = "NEXOGRAFIX PRIVATE LIMITED"
	companyAddress = "Head Office-Bihar Krishna Nagar, Ward No 22/37 Saharsa, Pincode-852201"
	headerFill     = "#d26500"
)

// Document is an abstract payslip layout: an ordered list of drawing
// instructions decoupled from any output backend.
type Document struct {
	Nodes []Node
}

type Node interface {
	isNode()
}

// Band is a full-width colored strip with centered text.
type Band struct {
	Text string
	Fill string
}

// Line is a single text line.
type Line struct {
	Text   string
	Align  string // left, center, right
	Bold   bool
	Italic bool
}

// Cell is one table or grid cell.
type Cell struct {
	Text string
	Bold bool
}

// Grid is a bordered table of equal-width cells.
type Grid struct {
	Rows [][]Cell
}

// Words is the amount-in-words row.
type Words struct {
	Label string
	Text  string
}

// Footnote is the small-print summary at the bottom.
type Footnote struct {
	Text string
}

func (Band) isNode()     {}
func (Line) isNode()     {}
func (Grid) isNode()     {}
func (Words) isNode()    {}
func (Footnote) isNode() {}

// BuildPayslip composes the payslip layout for one computed result. Pure
// function; writing the document anywhere is the caller's job.
func BuildPayslip(r PayrollResult) Document {
	monthName := time.Month(r.Month).String()
	title := fmt.Sprintf("Pay Slip for the month of %s – %d", monthName, r.Year)

	identity := Grid{Rows: [][]Cell{
		{
			{Text: "Employee Name", Bold: true},
			{Text: r.Username},
			{Text: "Paid Days", Bold: true},
			{Text: strconv.Itoa(r.PresentDays)},
		},
		{
			{Text: "DOJ", Bold: true},
			{Text: r.JoinDate.Format("02/01/2006")},
			{Text: "Total Days", Bold: true},
			{Text: strconv.Itoa(r.TotalWorkingDays)},
		},
	}}

	earnings := [][2]string{
		{"Basic salary", money(r.Salary)},
		{"House Rent Allowance", "0"},
		{"Conveyance Allowance", "0"},
		{"Other Allowances", money(r.WeekendBonus)},
		{"Total Earnings", money(r.GrossEarnings)},
		{"Net Salary Payable", money(r.NetPay)},
	}
	deductions := [][2]string{
		{"Professional Tax", "0"},
		{"Loss of Pay", "0"},
		{"Salary Advance", "0"},
		{"Other Deductions", money(r.LeaveDeduction)},
		{"Total Deductions", money(r.TotalDeductions)},
		{"", ""},
	}

	breakdown := Grid{Rows: make([][]Cell, 0, len(earnings)+2)}
	breakdown.Rows = append(breakdown.Rows, []Cell{
		{Text: "Earnings Description", Bold: true},
		{Text: ""},
		{Text: "Deductions Description", Bold: true},
		{Text: ""},
	})
	breakdown.Rows = append(breakdown.Rows, []Cell{
		{Text: "Description", Bold: true},
		{Text: "Amount(Rs)", Bold: true},
		{Text: "Description", Bold: true},
		{Text: "Amount(Rs)", Bold: true},
	})
	for i := range earnings {
		breakdown.Rows = append(breakdown.Rows, []Cell{
			{Text: earnings[i][0]},
			{Text: earnings[i][1]},
			{Text: deductions[i][0]},
			{Text: deductions[i][1]},
		})
	}

	footnote := fmt.Sprintf(
		"Present: %d  |  Approved Leaves: %d (1 free)  |  Unpaid Leave/Absent: %d  |  Weekend Days: %d (Rs %d)  |  Per-day deduction: Rs %d",
		r.PresentDays, r.LeaveDays, r.DeductibleLeaves+r.AbsentDays, r.WeekendDays, r.WeekendBonus, r.DeductionRate,
	)

	return Document{Nodes: []Node{
		Band{Text: companyName, Fill: headerFill},
		Line{Text: companyAddress, Align: "center"},
		Line{Text: "Private and Confidential", Align: "right", Italic: true},
		Line{Text: title, Align: "center", Bold: true},
		identity,
		breakdown,
		Words{Label: "Amount in Words", Text: AmountInWords(r.NetPay) + " Rupees Only"},
		Footnote{Text: footnote},
	}}
}

func money(v int64) string {
	return strconv.FormatInt(v, 10)
}
