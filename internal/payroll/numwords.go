package payroll

import "strings"

var numUnits = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var numTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells an amount in the Indian numbering system
// (Thousand, Lakh, Crore). Zero maps to "Zero". Net pay can go negative
// on heavy absence, so negative amounts spell out too.
func AmountInWords(n int64) string {
	switch {
	case n == 0:
		return "Zero"
	case n < 0:
		return "Minus " + inWords(-n)
	default:
		return inWords(n)
	}
}

func inWords(n int64) string {
	switch {
	case n < 20:
		return numUnits[n]
	case n < 100:
		s := numTens[n/10]
		if n%10 != 0 {
			s += " " + numUnits[n%10]
		}
		return s
	case n < 1000:
		s := numUnits[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + inWords(n%100)
		}
		return s
	case n < 100000:
		return joinWords(inWords(n/1000)+" Thousand", n%1000)
	case n < 10000000:
		return joinWords(inWords(n/100000)+" Lakh", n%100000)
	default:
		return joinWords(inWords(n/10000000)+" Crore", n%10000000)
	}
}

func joinWords(head string, rem int64) string {
	if rem == 0 {
		return head
	}
	return strings.TrimSpace(head + " " + inWords(rem))
}
