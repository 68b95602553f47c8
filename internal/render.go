package internal

import (
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"household-intranet/errors"
	"household-intranet/mapping"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// RenderResponse prints a handler response as a two column table.
func RenderResponse(w io.Writer, response any) {
	table := newTable(w, "Field", "Value")
	switch r := response.(type) {
	case mapping.ServiceReceipt:
		table.Append([]string{"Identifier", r.Identifier.String()})
		table.Append([]string{"EventDate", r.EventDate.Format(time.RFC3339)})
	case mapping.BookkeepingResponse:
		table.Append([]string{"Accounting", fmt.Sprint(r.AccountingNumber)})
		table.Append([]string{"Line", fmt.Sprint(r.LineNumber)})
		table.Append([]string{"PostingDate", r.PostingDate.Format(time.DateOnly)})
		table.Append([]string{"Reference", r.Reference})
		table.Append([]string{"Account", r.AccountNumber})
		table.Append([]string{"Debit", r.Debit.StringFixed(2)})
		table.Append([]string{"Credit", r.Credit.StringFixed(2)})
		for _, warning := range r.Warnings {
			table.Append([]string{"Warning", warning.Text})
		}
	default:
		table.Append([]string{"Response", fmt.Sprintf("%+v", response)})
	}
	table.Render()
}

// RenderError prints a classified error in culture, or the raw error when it was never classified.
func RenderError(w io.Writer, err error, culture language.Tag) {
	table := newTable(w, "Kind", "Message")
	kind, ok := errors.KindOf(err)
	if !ok {
		label := "unclassified"
		if errors.IsArgumentError(err) {
			label = "argument"
		}
		table.Append([]string{label, err.Error()})
		table.Render()
		return
	}
	var ie *errors.IntranetError
	message := err.Error()
	if stderrors.As(err, &ie) {
		message = ie.Localize(culture)
	}
	table.Append([]string{kind.String(), message})
	table.Render()
}
