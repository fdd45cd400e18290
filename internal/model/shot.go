package model

// Shot is a scheduled production shot.
type Shot struct {
	Header
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
}

// Lookup resolves shot fields before the shared header fields.
func (s Shot) Lookup(field string) Value {
	switch field {
	case FieldDate:
		return textValue(s.Date)
	case FieldStartTime:
		return textValue(s.StartTime)
	}
	return s.Header.Lookup(field)
}

// UnmarshalJSON decodes a shot leniently and keeps the raw record for
// dynamic lookups. null leaves the shot unchanged.
func (s *Shot) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	h, obj, err := decodeHeader(data)
	if err != nil {
		return err
	}
	*s = Shot{
		Header:    h,
		Date:      textOf(obj, FieldDate),
		StartTime: textOf(obj, FieldStartTime),
	}
	return nil
}
