package ledger

// ClassificationRules decides how canonical categories participate in
// the "other income / other expense" buckets of a financial summary.
// The rules are passed explicitly to the summary engine so tests and
// callers can override them without touching package state.
type ClassificationRules struct {
	// IncomeExcluded holds canonical keys whose income entries are
	// internal transfers of revenue already captured elsewhere (sale
	// and service income, deposits, advance repayments). They never
	// count as other income.
	IncomeExcluded map[CategoryKey]struct{}

	// ExpenseExcluded holds canonical keys whose expense entries are
	// cost-of-goods or contra-revenue counted elsewhere (inventory
	// purchases, supplier payments, loan principal, refunds). They
	// never count as other expense.
	ExpenseExcluded map[CategoryKey]struct{}

	// RefundKey is the canonical key treated as contra-revenue.
	RefundKey CategoryKey
}

// DefaultClassificationRules returns the production rule set
func DefaultClassificationRules() ClassificationRules {
	return ClassificationRules{
		IncomeExcluded: keySet(
			CategorySaleIncome,
			CategoryServiceIncome,
			CategoryDeposit,
			CategoryAdvanceRepayment,
		),
		ExpenseExcluded: keySet(
			CategoryInventoryPurchase,
			CategorySupplierPayment,
			CategoryLoanPrincipal,
			CategoryRefund,
		),
		RefundKey: CategoryRefund,
	}
}

// IsIncomeExcluded reports whether an income entry with this raw label
// is excluded from other income
func (r ClassificationRules) IsIncomeExcluded(label string) bool {
	_, ok := r.IncomeExcluded[Canonicalize(label)]
	return ok
}

// IsExpenseExcluded reports whether an expense entry with this raw
// label is excluded from other expense
func (r ClassificationRules) IsExpenseExcluded(label string) bool {
	_, ok := r.ExpenseExcluded[Canonicalize(label)]
	return ok
}

// IsRefund reports whether the raw label denotes a customer refund.
// A zero-value rule set has no refund key and matches nothing.
func (r ClassificationRules) IsRefund(label string) bool {
	return r.RefundKey != "" && Canonicalize(label) == r.RefundKey
}

func keySet(keys ...CategoryKey) map[CategoryKey]struct{} {
	set := make(map[CategoryKey]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
