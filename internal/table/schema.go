package table

// Column is one output column: a stable identifier and the header title.
type Column struct {
	ID    string
	Title string
}

// ColumnCount is the fixed arity of every Record.
const ColumnCount = 18

// Undefined fills columns that a line did not supply.
const Undefined = "undefined"

// Columns lists the surplus-sale schema in output order.
var Columns = [ColumnCount]Column{
	{ID: "potential_surplus", Title: "Potential Surplus"},
	{ID: "resale_value", Title: "Est. Resale Value"},
	{ID: "opening_bid", Title: "Opening Bid"},
	{ID: "date_sold", Title: "Date Sold"},
	{ID: "case_number", Title: "Case #"},
	{ID: "parcel_id", Title: "Parcel ID"},
	{ID: "type_of_foreclosure", Title: "Type of Foreclosure"},
	{ID: "first_name", Title: "First Name"},
	{ID: "last_name", Title: "Last Name"},
	{ID: "mailing_address", Title: "Mailing Address"},
	{ID: "mailing_city", Title: "Mailing City"},
	{ID: "mailing_state", Title: "Mailing State"},
	{ID: "mailing_zip_code", Title: "Mailing Zip Code"},
	{ID: "property_address", Title: "Property Address"},
	{ID: "property_city", Title: "Property City"},
	{ID: "property_state", Title: "Property State"},
	{ID: "property_zip_code", Title: "Property Zip Code"},
	{ID: "county", Title: "County"},
}

// Titles returns the header row.
func Titles() []string {
	out := make([]string, ColumnCount)
	for i, col := range Columns {
		out[i] = col.Title
	}
	return out
}

// ColumnIndex returns the position of the column with the given ID.
func ColumnIndex(id string) (int, bool) {
	for i, col := range Columns {
		if col.ID == id {
			return i, true
		}
	}
	return -1, false
}
