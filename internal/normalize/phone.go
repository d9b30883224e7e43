package normalize

// Phone is a North American number split into its dialing parts.
type Phone struct {
	AreaCode          string `json:"area_code"`
	CentralOfficeCode string `json:"central_office_code"`
	StationCode       string `json:"station_code"`
}

// Map renders the phone as a document section.
func (p Phone) Map() map[string]any {
	return map[string]any{
		"area_code":           p.AreaCode,
		"central_office_code": p.CentralOfficeCode,
		"station_code":        p.StationCode,
	}
}

// FormatPhone splits a 10-digit string into area, central office and station
// codes. Anything else yields a Phone with all parts empty.
func FormatPhone(phone string) Phone {
	if len(phone) != 10 {
		return Phone{}
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return Phone{}
		}
	}
	return Phone{
		AreaCode:          phone[:3],
		CentralOfficeCode: phone[3:6],
		StationCode:       phone[6:],
	}
}
