package calendar

// ExportRow is the flat shape of a meeting handed to the export action.
type ExportRow struct {
	Title    string
	Date     string
	Time     string
	Duration int
	Status   string
	Type     string
}

const exportDateLayout = "2006-01-02"

// Export collates the current list. Nothing is written anywhere.
func (b *Book) Export() []ExportRow {
	rows := make([]ExportRow, 0, len(b.meetings))
	for _, m := range b.meetings {
		rows = append(rows, ExportRow{
			Title:    m.Title,
			Date:     m.Date.Format(exportDateLayout),
			Time:     m.Time.String(),
			Duration: m.Duration,
			Status:   string(m.Status),
			Type:     string(m.Kind),
		})
	}
	return rows
}
