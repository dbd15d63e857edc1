package format

// FuncMap returns template helpers bound to f, for use with text/template
// and html/template:
//
//	tmpl := template.New("receipt").Funcs(format.Default().FuncMap())
//
//	{{ format_document .CPF }}  {{ format_currency .Total "ingles" }}
//	{{ format_datetime .PaidAt "dd/MM/yyyy HH:mm:ss" }}  {{ pad_zeros .Seq 6 }}
//
// Helpers that can fail return the error as their second result, which
// aborts template execution.
func (f *Formatter) FuncMap() map[string]any {
	return map[string]any{
		"format_document":   f.FormatDocument,
		"strip_document":    StripDocumentFormatting,
		"format_currency":   f.FormatCurrency,
		"format_date":       f.FormatDate,
		"format_datetime":   f.FormatDateTime,
		"pad_zeros":         PadLeadingZeros,
		"format_phone":      f.FormatPhone,
		"format_phone_e164": f.FormatPhoneE164,
	}
}
