package postgres

import (
	"github.com/TrainLCD/StationAPI/internal/domain"
)

// Flat row types, one per result shape. Stations are always read joined to
// their owning line (with alias overrides coalesced in), so stationRow
// carries the denormalised line columns; the optional sst columns are only
// populated by train-type joined queries. Conversion to domain entities
// happens here, never in the usecase layer.

type stationRow struct {
	StationCd     int64   `db:"station_cd"`
	StationGCd    int64   `db:"station_g_cd"`
	StationName   string  `db:"station_name"`
	StationNameK  string  `db:"station_name_k"`
	StationNameR  *string `db:"station_name_r"`
	StationNameRN *string `db:"station_name_rn"`
	StationNameZh *string `db:"station_name_zh"`
	StationNameKo *string `db:"station_name_ko"`

	StationNumber1  *string `db:"station_number1"`
	StationNumber2  *string `db:"station_number2"`
	StationNumber3  *string `db:"station_number3"`
	StationNumber4  *string `db:"station_number4"`
	ThreeLetterCode *string `db:"three_letter_code"`

	LineCd   int64   `db:"line_cd"`
	PrefCd   int64   `db:"pref_cd"`
	Post     string  `db:"post"`
	Address  string  `db:"address"`
	Lon      float64 `db:"lon"`
	Lat      float64 `db:"lat"`
	OpenYmd  string  `db:"open_ymd"`
	CloseYmd string  `db:"close_ymd"`
	EStatus  int64   `db:"e_status"`
	ESort    int64   `db:"e_sort"`

	// Denormalised line columns (alias COALESCE already applied).
	CompanyCd        int64   `db:"company_cd"`
	LineName         string  `db:"line_name"`
	LineNameK        string  `db:"line_name_k"`
	LineNameH        string  `db:"line_name_h"`
	LineNameR        *string `db:"line_name_r"`
	LineNameZh       *string `db:"line_name_zh"`
	LineNameKo       *string `db:"line_name_ko"`
	LineColorC       string  `db:"line_color_c"`
	LineType         int64   `db:"line_type"`
	LineSymbol1      *string `db:"line_symbol1"`
	LineSymbol2      *string `db:"line_symbol2"`
	LineSymbol3      *string `db:"line_symbol3"`
	LineSymbol4      *string `db:"line_symbol4"`
	LineSymbol1Color *string `db:"line_symbol1_color"`
	LineSymbol2Color *string `db:"line_symbol2_color"`
	LineSymbol3Color *string `db:"line_symbol3_color"`
	LineSymbol4Color *string `db:"line_symbol4_color"`
	LineSymbol1Shape *string `db:"line_symbol1_shape"`
	LineSymbol2Shape *string `db:"line_symbol2_shape"`
	LineSymbol3Shape *string `db:"line_symbol3_shape"`
	LineSymbol4Shape *string `db:"line_symbol4_shape"`
	AverageDistance  float64 `db:"average_distance"`

	HasTrainTypes bool     `db:"has_train_types"`
	Distance      *float64 `db:"distance"`

	// Optional train-type columns (station_station_types joined queries).
	SstID       *int64  `db:"sst_id"`
	TypeCd      *int64  `db:"type_cd"`
	LineGroupCd *int64  `db:"line_group_cd"`
	Pass        *int64  `db:"pass"`
	TypeName    *string `db:"type_name"`
	TypeNameK   *string `db:"type_name_k"`
	TypeNameR   *string `db:"type_name_r"`
	TypeNameZh  *string `db:"type_name_zh"`
	TypeNameKo  *string `db:"type_name_ko"`
	TypeColor   *string `db:"type_color"`
	Direction   *int64  `db:"direction"`
	Kind        *int64  `db:"kind"`
	Priority    *int64  `db:"priority"`
}

func (r *stationRow) toDomain() *domain.Station {
	s := &domain.Station{
		ID:              r.StationCd,
		GroupID:         r.StationGCd,
		Name:            r.StationName,
		NameKatakana:    r.StationNameK,
		NameRoman:       r.StationNameR,
		NameRomanNorm:   r.StationNameRN,
		NameChinese:     r.StationNameZh,
		NameKorean:      r.StationNameKo,
		ThreeLetterCode: r.ThreeLetterCode,
		LineID:          r.LineCd,
		PrefectureID:    r.PrefCd,
		PostalCode:      r.Post,
		Address:         r.Address,
		Longitude:       r.Lon,
		Latitude:        r.Lat,
		OpenedAt:        r.OpenYmd,
		ClosedAt:        r.CloseYmd,
		Status:          r.EStatus,
		SortOrder:       r.ESort,
		RawNumbers: [4]string{
			deref(r.StationNumber1),
			deref(r.StationNumber2),
			deref(r.StationNumber3),
			deref(r.StationNumber4),
		},
		Line:          r.lineToDomain(),
		StopCondition: domain.StopConditionAll,
		HasTrainTypes: r.HasTrainTypes,
		Distance:      r.Distance,
	}

	if r.Pass != nil {
		s.StopCondition = domain.StopConditionFromPass(*r.Pass)
	}
	if r.TypeCd != nil {
		s.TrainType = r.trainTypeToDomain()
	}

	return s
}

// lineToDomain rebuilds the owning line from the denormalised columns, so a
// single station row materialises its line without a second read.
func (r *stationRow) lineToDomain() *domain.Line {
	return &domain.Line{
		ID:              r.LineCd,
		CompanyID:       r.CompanyCd,
		Name:            r.LineName,
		NameKatakana:    r.LineNameK,
		NameFull:        r.LineNameH,
		NameRoman:       r.LineNameR,
		NameChinese:     r.LineNameZh,
		NameKorean:      r.LineNameKo,
		Color:           r.LineColorC,
		Type:            r.LineType,
		Status:          r.EStatus,
		AverageDistance: r.AverageDistance,
		StationGroupID:  r.StationGCd,
		SymbolSlots: [4]domain.SymbolSlot{
			{Symbol: deref(r.LineSymbol1), Color: deref(r.LineSymbol1Color), Shape: deref(r.LineSymbol1Shape)},
			{Symbol: deref(r.LineSymbol2), Color: deref(r.LineSymbol2Color), Shape: deref(r.LineSymbol2Shape)},
			{Symbol: deref(r.LineSymbol3), Color: deref(r.LineSymbol3Color), Shape: deref(r.LineSymbol3Shape)},
			{Symbol: deref(r.LineSymbol4), Color: deref(r.LineSymbol4Color), Shape: deref(r.LineSymbol4Shape)},
		},
	}
}

func (r *stationRow) trainTypeToDomain() *domain.TrainType {
	tt := &domain.TrainType{
		SSTID:        derefInt(r.SstID),
		StationID:    r.StationCd,
		TypeID:       derefInt(r.TypeCd),
		GroupID:      derefInt(r.LineGroupCd),
		Name:         deref(r.TypeName),
		NameKatakana: deref(r.TypeNameK),
		NameRoman:    r.TypeNameR,
		NameChinese:  r.TypeNameZh,
		NameKorean:   r.TypeNameKo,
		Color:        deref(r.TypeColor),
		Direction:    derefInt(r.Direction),
		Kind:         derefInt(r.Kind),
		Priority:     derefInt(r.Priority),
	}
	if r.Pass != nil {
		tt.StopCondition = domain.StopConditionFromPass(*r.Pass)
	}
	return tt
}

type lineRow struct {
	LineCd           int64   `db:"line_cd"`
	CompanyCd        int64   `db:"company_cd"`
	LineName         string  `db:"line_name"`
	LineNameK        string  `db:"line_name_k"`
	LineNameH        string  `db:"line_name_h"`
	LineNameR        *string `db:"line_name_r"`
	LineNameZh       *string `db:"line_name_zh"`
	LineNameKo       *string `db:"line_name_ko"`
	LineColorC       string  `db:"line_color_c"`
	LineType         int64   `db:"line_type"`
	LineSymbol1      *string `db:"line_symbol1"`
	LineSymbol2      *string `db:"line_symbol2"`
	LineSymbol3      *string `db:"line_symbol3"`
	LineSymbol4      *string `db:"line_symbol4"`
	LineSymbol1Color *string `db:"line_symbol1_color"`
	LineSymbol2Color *string `db:"line_symbol2_color"`
	LineSymbol3Color *string `db:"line_symbol3_color"`
	LineSymbol4Color *string `db:"line_symbol4_color"`
	LineSymbol1Shape *string `db:"line_symbol1_shape"`
	LineSymbol2Shape *string `db:"line_symbol2_shape"`
	LineSymbol3Shape *string `db:"line_symbol3_shape"`
	LineSymbol4Shape *string `db:"line_symbol4_shape"`
	EStatus          int64   `db:"e_status"`
	ESort            int64   `db:"e_sort"`
	AverageDistance  float64 `db:"average_distance"`

	StationGCd  *int64 `db:"station_g_cd"`
	LineGroupCd *int64 `db:"line_group_cd"`
}

func (r *lineRow) toDomain() *domain.Line {
	return &domain.Line{
		ID:              r.LineCd,
		CompanyID:       r.CompanyCd,
		Name:            r.LineName,
		NameKatakana:    r.LineNameK,
		NameFull:        r.LineNameH,
		NameRoman:       r.LineNameR,
		NameChinese:     r.LineNameZh,
		NameKorean:      r.LineNameKo,
		Color:           r.LineColorC,
		Type:            r.LineType,
		Status:          r.EStatus,
		SortOrder:       r.ESort,
		AverageDistance: r.AverageDistance,
		StationGroupID:  derefInt(r.StationGCd),
		LineGroupID:     derefInt(r.LineGroupCd),
		SymbolSlots: [4]domain.SymbolSlot{
			{Symbol: deref(r.LineSymbol1), Color: deref(r.LineSymbol1Color), Shape: deref(r.LineSymbol1Shape)},
			{Symbol: deref(r.LineSymbol2), Color: deref(r.LineSymbol2Color), Shape: deref(r.LineSymbol2Shape)},
			{Symbol: deref(r.LineSymbol3), Color: deref(r.LineSymbol3Color), Shape: deref(r.LineSymbol3Shape)},
			{Symbol: deref(r.LineSymbol4), Color: deref(r.LineSymbol4Color), Shape: deref(r.LineSymbol4Shape)},
		},
	}
}

type companyRow struct {
	CompanyCd         int64   `db:"company_cd"`
	RrCd              int64   `db:"rr_cd"`
	CompanyName       string  `db:"company_name"`
	CompanyNameK      string  `db:"company_name_k"`
	CompanyNameH      string  `db:"company_name_h"`
	CompanyNameR      string  `db:"company_name_r"`
	CompanyNameEn     string  `db:"company_name_en"`
	CompanyNameFullEn string  `db:"company_name_full_en"`
	CompanyURL        *string `db:"company_url"`
	CompanyType       int64   `db:"company_type"`
	EStatus           int64   `db:"e_status"`
	ESort             int64   `db:"e_sort"`
}

func (r *companyRow) toDomain() *domain.Company {
	return &domain.Company{
		ID:               r.CompanyCd,
		RailroadID:       r.RrCd,
		Name:             r.CompanyName,
		NameShort:        r.CompanyNameR,
		NameKatakana:     r.CompanyNameK,
		NameFull:         r.CompanyNameH,
		NameEnglishShort: r.CompanyNameEn,
		NameEnglishFull:  r.CompanyNameFullEn,
		URL:              r.CompanyURL,
		Type:             r.CompanyType,
		Status:           r.EStatus,
		SortOrder:        r.ESort,
	}
}

type trainTypeRow struct {
	SstID       int64   `db:"sst_id"`
	StationCd   int64   `db:"station_cd"`
	TypeCd      int64   `db:"type_cd"`
	LineGroupCd int64   `db:"line_group_cd"`
	Pass        int64   `db:"pass"`
	TypeName    string  `db:"type_name"`
	TypeNameK   string  `db:"type_name_k"`
	TypeNameR   *string `db:"type_name_r"`
	TypeNameZh  *string `db:"type_name_zh"`
	TypeNameKo  *string `db:"type_name_ko"`
	Color       string  `db:"color"`
	Direction   int64   `db:"direction"`
	Kind        int64   `db:"kind"`
	Priority    int64   `db:"priority"`
}

func (r *trainTypeRow) toDomain() *domain.TrainType {
	return &domain.TrainType{
		SSTID:         r.SstID,
		StationID:     r.StationCd,
		TypeID:        r.TypeCd,
		GroupID:       r.LineGroupCd,
		Name:          r.TypeName,
		NameKatakana:  r.TypeNameK,
		NameRoman:     r.TypeNameR,
		NameChinese:   r.TypeNameZh,
		NameKorean:    r.TypeNameKo,
		Color:         r.Color,
		Direction:     r.Direction,
		Kind:          r.Kind,
		Priority:      r.Priority,
		StopCondition: domain.StopConditionFromPass(r.Pass),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
