package invoice

import (
	"strconv"
	"strings"
)

// Set applies a raw form-field edit identified by a field path. This is the
// binding contract between an edit surface and the model: the identifier
// names the operation, nothing else is shared. Recognized identifiers:
//
//	invoiceNo, date
//	billedTo.name, billedTo.phone, billedTo.aadhar, billedTo.address
//	items[N].description, items[N].price, items[N].qty
//	discountPercent, gstPercent, adjustment
//
// Unknown identifiers, malformed paths and out-of-range item indices are
// no-ops, the same absorption policy the model applies to every other
// malformed edit.
func (d *Draft) Set(field, value string) {
	switch field {
	case "invoiceNo":
		d.SetInvoiceNo(value)
		return
	case "date":
		d.SetDate(value)
		return
	case "discountPercent":
		d.SetDiscountPercent(value)
		return
	case "gstPercent":
		d.SetGSTPercent(value)
		return
	case "adjustment":
		d.SetAdjustment(value)
		return
	}

	if name, ok := strings.CutPrefix(field, "billedTo."); ok {
		switch name {
		case "name":
			d.SetBilledToName(value)
		case "phone":
			d.SetBilledToPhone(value)
		case "aadhar":
			d.SetBilledToAadhar(value)
		case "address":
			d.SetBilledToAddress(value)
		}
		return
	}

	if rest, ok := strings.CutPrefix(field, "items["); ok {
		idx, name, ok := strings.Cut(rest, "].")
		if !ok {
			return
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return
		}
		switch name {
		case "description":
			d.SetItemDescription(i, value)
		case "price":
			d.SetItemPrice(i, value)
		case "qty":
			d.SetItemQty(i, value)
		}
	}
}
