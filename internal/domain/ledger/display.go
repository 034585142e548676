package ledger

// categoryDisplayNames is the display view over the canonical keys.
// It shares the single alias table in category.go with the
// classification view; only the rendering differs.
var categoryDisplayNames = map[CategoryKey]string{
	CategorySaleIncome:       "Thu bán hàng",
	CategoryServiceIncome:    "Thu sửa chữa",
	CategoryDeposit:          "Khách đặt cọc",
	CategoryAdvanceRepayment: "Thu hồi tạm ứng",
	CategoryOtherIncome:      "Thu khác",

	CategoryInventoryPurchase: "Mua hàng",
	CategorySupplierPayment:   "Trả nhà cung cấp",
	CategoryLoanPrincipal:     "Trả nợ gốc",
	CategoryRefund:            "Hoàn tiền",
	CategoryUtilities:         "Điện nước",
	CategoryRent:              "Thuê mặt bằng",
	CategorySalary:            "Lương",
	CategoryOutsourcing:       "Thuê ngoài",
	CategoryShipping:          "Vận chuyển",
	CategoryMarketing:         "Quảng cáo",
	CategoryEquipment:         "Thiết bị",
	CategoryTaxFee:            "Thuế phí",
	CategoryBankCharge:        "Phí ngân hàng",
	CategoryMiscExpense:       "Chi khác",
	CategoryOwnerDrawing:      "Chủ rút vốn",
}

// DisplayName returns the human label for a category key. Unrecognized
// keys carry the original user text, which is displayed verbatim.
func DisplayName(key CategoryKey) string {
	if name, ok := categoryDisplayNames[key]; ok {
		return name
	}
	return string(key)
}

// DisplayLabel canonicalizes a raw label and renders it for display
func DisplayLabel(label string) string {
	return DisplayName(Canonicalize(label))
}
