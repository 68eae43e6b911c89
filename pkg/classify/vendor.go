// Package classify maps free-text inventory strings onto closed categories.
//
// Inventory exports describe the same fact in many spellings: "Dell Inc.",
// "DELL", a model string of "PowerEdge R750" with an empty vendor field, and
// so on. This package owns the heuristics that collapse those spellings into
// fixed vendor, power-state, and availability categories.
//
// Every classifier is an ordered list of (predicate, category) rules
// evaluated in sequence with first-match-wins, so precedence is explicit in
// the table rather than buried in control flow. Unmatched input degrades to
// a sentinel (VendorUnknown, PowerOff, "Unknown") and is never an error.
package classify

import "strings"

// Vendor is a closed hardware vendor category.
type Vendor string

// Recognized vendors. VendorUnknown is the fallback, not an error.
const (
	VendorDell      Vendor = "Dell"
	VendorHPE       Vendor = "HPE"
	VendorLenovo    Vendor = "Lenovo"
	VendorCisco     Vendor = "Cisco"
	VendorVMware    Vendor = "VMware"
	VendorMicrosoft Vendor = "Microsoft"
	VendorNutanix   Vendor = "Nutanix"
	VendorUnknown   Vendor = "Unknown"
)

// vendorRule matches case-insensitive substrings against the vendor string
// and the model string. A rule matches when any vendor keyword appears in
// the vendor text or any model keyword appears in the model text.
type vendorRule struct {
	vendorKeywords []string
	modelKeywords  []string
	vendor         Vendor
}

// vendorRules is evaluated top to bottom; the first matching rule wins.
// Order matters: model signatures overlap vendor keywords across brands
// (a record with vendor "HP" and model "PowerEdge R750" is a Dell chassis
// with a mislabeled vendor field, so the Dell rule is checked first).
var vendorRules = []vendorRule{
	{[]string{"dell"}, []string{"poweredge"}, VendorDell},
	{[]string{"hp", "hewlett", "hpe"}, []string{"proliant"}, VendorHPE},
	{[]string{"lenovo"}, []string{"thinksystem", "thinkserver"}, VendorLenovo},
	{[]string{"cisco"}, []string{"ucs"}, VendorCisco},
	{[]string{"vmware"}, []string{}, VendorVMware},
	{[]string{"microsoft"}, []string{}, VendorMicrosoft},
	{[]string{"nutanix"}, []string{"nx-"}, VendorNutanix},
}

// VendorOf classifies a host record by its vendor and model strings.
// Matching is case-insensitive substring search over both fields; the rule
// order in vendorRules is the precedence contract.
func VendorOf(vendorText, modelText string) Vendor {
	vendorText = strings.ToLower(vendorText)
	modelText = strings.ToLower(modelText)

	for _, rule := range vendorRules {
		if containsAny(vendorText, rule.vendorKeywords) || containsAny(modelText, rule.modelKeywords) {
			return rule.vendor
		}
	}
	return VendorUnknown
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
