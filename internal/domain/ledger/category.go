package ledger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CategoryKey is the canonical identifier a raw ledger category label
// resolves to. Recognized labels map onto one of the Category* constants
// below; an unrecognized label is carried verbatim as its own key so it
// still shows up in reports under the text the user typed.
type CategoryKey string

// Canonical category keys. These are the only keys the classification
// and display views know about; Canonicalize never invents new ones.
const (
	CategorySaleIncome       CategoryKey = "sale_income"
	CategoryServiceIncome    CategoryKey = "service_income"
	CategoryDeposit          CategoryKey = "deposit"
	CategoryAdvanceRepayment CategoryKey = "advance_repayment"
	CategoryOtherIncome      CategoryKey = "other_income"

	CategoryInventoryPurchase CategoryKey = "inventory_purchase"
	CategorySupplierPayment   CategoryKey = "supplier_payment"
	CategoryLoanPrincipal     CategoryKey = "loan_principal"
	CategoryRefund            CategoryKey = "refund"
	CategoryUtilities         CategoryKey = "utilities"
	CategoryRent              CategoryKey = "rent"
	CategorySalary            CategoryKey = "salary"
	CategoryOutsourcing       CategoryKey = "outsourcing"
	CategoryShipping          CategoryKey = "shipping"
	CategoryMarketing         CategoryKey = "marketing"
	CategoryEquipment         CategoryKey = "equipment"
	CategoryTaxFee            CategoryKey = "tax_fee"
	CategoryBankCharge        CategoryKey = "bank_charge"
	CategoryMiscExpense       CategoryKey = "misc_expense"
	CategoryOwnerDrawing      CategoryKey = "owner_drawing"
)

// categoryAliases maps normalized spellings to canonical keys. All keys
// in this table must already be in normalized form (lowercase, no
// diacritics, single spaces). The canonical key string itself is always
// an alias of its key, so round-tripping a canonical key is stable.
//
// The Vietnamese aliases cover both the diacritic and the bare-ASCII
// spellings staff actually type; the English ones are legacy codes from
// the pre-migration system.
var categoryAliases = map[string]CategoryKey{
	// income
	"ban hang":       CategorySaleIncome,
	"thu ban hang":   CategorySaleIncome,
	"ban le":         CategorySaleIncome,
	"pos_sale":       CategorySaleIncome,
	"sales_income":   CategorySaleIncome,
	"sua chua":       CategoryServiceIncome,
	"thu sua chua":   CategoryServiceIncome,
	"tien cong":      CategoryServiceIncome,
	"repair_income":  CategoryServiceIncome,
	"service":        CategoryServiceIncome,
	"dat coc":        CategoryDeposit,
	"tien coc":       CategoryDeposit,
	"khach dat coc":  CategoryDeposit,
	"customer_deposit": CategoryDeposit,
	"hoan ung":        CategoryAdvanceRepayment,
	"tra tam ung":     CategoryAdvanceRepayment,
	"thu hoi tam ung": CategoryAdvanceRepayment,
	"thu khac":    CategoryOtherIncome,
	"thu nhap khac": CategoryOtherIncome,
	"misc_income": CategoryOtherIncome,

	// expense
	"mua hang":      CategoryInventoryPurchase,
	"nhap hang":     CategoryInventoryPurchase,
	"mua phu tung":  CategoryInventoryPurchase,
	"purchase":      CategoryInventoryPurchase,
	"tra nha cung cap": CategorySupplierPayment,
	"tra ncc":          CategorySupplierPayment,
	"thanh toan ncc":   CategorySupplierPayment,
	"tra no goc":   CategoryLoanPrincipal,
	"tra goc vay":  CategoryLoanPrincipal,
	"hoan tien":            CategoryRefund,
	"hoan tien khach":      CategoryRefund,
	"tra lai tien khach":   CategoryRefund,
	"dien nuoc":  CategoryUtilities,
	"tien dien":  CategoryUtilities,
	"tien nuoc":  CategoryUtilities,
	"thue mat bang": CategoryRent,
	"tien nha":      CategoryRent,
	"luong":     CategorySalary,
	"tra luong": CategorySalary,
	"payroll":   CategorySalary,
	"thue ngoai":    CategoryOutsourcing,
	"gia cong":      CategoryOutsourcing,
	"outside_labor": CategoryOutsourcing,
	"van chuyen": CategoryShipping,
	"giao hang":  CategoryShipping,
	"ship":       CategoryShipping,
	"quang cao": CategoryMarketing,
	"mua thiet bi": CategoryEquipment,
	"thiet bi":     CategoryEquipment,
	"do nghe":      CategoryEquipment,
	"thue phi": CategoryTaxFee,
	"le phi":   CategoryTaxFee,
	"tax":      CategoryTaxFee,
	"phi ngan hang": CategoryBankCharge,
	"bank_fee":      CategoryBankCharge,
	"chi khac": CategoryMiscExpense,
	"misc":     CategoryMiscExpense,
	"rut von":       CategoryOwnerDrawing,
	"chu rut tien":  CategoryOwnerDrawing,
	"drawing":       CategoryOwnerDrawing,
}

func init() {
	for _, key := range allCategoryKeys {
		categoryAliases[string(key)] = key
	}
}

var allCategoryKeys = []CategoryKey{
	CategorySaleIncome, CategoryServiceIncome, CategoryDeposit,
	CategoryAdvanceRepayment, CategoryOtherIncome,
	CategoryInventoryPurchase, CategorySupplierPayment, CategoryLoanPrincipal,
	CategoryRefund, CategoryUtilities, CategoryRent, CategorySalary,
	CategoryOutsourcing, CategoryShipping, CategoryMarketing,
	CategoryEquipment, CategoryTaxFee, CategoryBankCharge,
	CategoryMiscExpense, CategoryOwnerDrawing,
}

// AllCategoryKeys returns every canonical category key
func AllCategoryKeys() []CategoryKey {
	keys := make([]CategoryKey, len(allCategoryKeys))
	copy(keys, allCategoryKeys)
	return keys
}

// stripMarks removes Unicode combining marks after NFD decomposition.
// Vietnamese đ/Đ do not decompose into a base letter plus mark, so they
// are replaced explicitly.
var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeLabel folds a raw category label to the form used for alias
// lookup: trimmed, diacritics stripped, lowercased, inner whitespace
// collapsed to single spaces.
func normalizeLabel(label string) string {
	s := dReplacer.Replace(strings.TrimSpace(label))
	s = strings.ToLower(stripMarks(s))
	return strings.Join(strings.Fields(s), " ")
}

// Canonicalize resolves a raw category label to its canonical key.
// Recognized spellings (any casing, with or without diacritics, legacy
// codes) collapse onto one canonical key. An unrecognized label is
// returned untouched as its own key: the original text is preserved
// verbatim for display, and classification treats it as neither
// excluded nor refund.
func Canonicalize(label string) CategoryKey {
	normalized := normalizeLabel(label)
	if normalized == "" {
		return CategoryKey(strings.TrimSpace(label))
	}
	if key, ok := categoryAliases[normalized]; ok {
		return key
	}
	return CategoryKey(label)
}

// IsCanonical reports whether the key is one of the fixed canonical keys
func (k CategoryKey) IsCanonical() bool {
	_, ok := categoryDisplayNames[k]
	return ok
}
