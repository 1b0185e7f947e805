package report

import (
	"sort"
	"strconv"
	"time"

	"ninjadmin/ninja"
)

// Console display widths. Exports always carry the full values.
const (
	orgDisplayWidth      = 30
	locationDisplayWidth = 25
)

// DeviceRow is one device with organization and location names resolved.
type DeviceRow struct {
	Organization   string
	Location       string
	SystemName     string
	ApprovalStatus string
	Offline        bool
	Created        string
	LastContact    string
}

// DeviceRows flattens the device list, resolving organization and location
// names through the lookups and rendering Unix timestamps as calendar time.
// Rows are sorted by organization name, then system name.
func DeviceRows(devices []ninja.Device, orgNames, locationNames map[int]string) []DeviceRow {
	rows := make([]DeviceRow, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, DeviceRow{
			Organization:   orgNames[d.OrganizationID],
			Location:       locationNames[d.LocationID],
			SystemName:     d.SystemName,
			ApprovalStatus: d.ApprovalStatus,
			Offline:        d.Offline,
			Created:        formatEpoch(d.Created),
			LastContact:    formatEpoch(d.LastContact),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Organization != rows[j].Organization {
			return rows[i].Organization < rows[j].Organization
		}
		return rows[i].SystemName < rows[j].SystemName
	})
	return rows
}

func formatEpoch(sec float64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(int64(sec), 0).UTC().Format("2006-01-02 15:04:05")
}

// DeviceHeaders are the CSV/console column headers for the device report.
func DeviceHeaders() []string {
	return []string{"organization", "location", "systemName", "approvalStatus", "offline", "created", "lastContact"}
}

// DeviceRecords flattens the rows with full, untruncated values for export.
func DeviceRecords(rows []DeviceRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Organization, r.Location, r.SystemName, r.ApprovalStatus,
			strconv.FormatBool(r.Offline), r.Created, r.LastContact,
		})
	}
	return out
}

// DeviceConsoleRecords truncates organization and location for console
// legibility; everything else is unchanged.
func DeviceConsoleRecords(rows []DeviceRow) [][]string {
	out := DeviceRecords(rows)
	for _, rec := range out {
		rec[0] = truncate(rec[0], orgDisplayWidth)
		rec[1] = truncate(rec[1], locationDisplayWidth)
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
