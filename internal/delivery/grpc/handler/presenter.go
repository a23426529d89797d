package handler

import (
	"github.com/TrainLCD/StationAPI/internal/domain"
	"github.com/TrainLCD/StationAPI/internal/pb"
)

func stationToPB(s *domain.Station) *pb.Station {
	if s == nil {
		return nil
	}

	out := &pb.Station{
		Id:              uint32(s.ID),
		GroupId:         uint32(s.GroupID),
		Name:            s.Name,
		NameKatakana:    s.NameKatakana,
		NameRoman:       deref(s.NameRoman),
		NameChinese:     deref(s.NameChinese),
		NameKorean:      deref(s.NameKorean),
		ThreeLetterCode: deref(s.ThreeLetterCode),
		Line:            lineToPB(s.Line),
		PrefectureId:    uint32(s.PrefectureID),
		PostalCode:      s.PostalCode,
		Address:         s.Address,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		OpenedAt:        s.OpenedAt,
		ClosedAt:        s.ClosedAt,
		Status:          uint32(s.Status),
		StopCondition:   pb.StopCondition(s.StopCondition),
		HasTrainTypes:   s.HasTrainTypes,
		TrainType:       trainTypeToPB(s.TrainType),
	}
	if s.Distance != nil {
		out.Distance = *s.Distance
	}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, lineToPB(l))
	}
	for _, n := range s.StationNumbers {
		out.StationNumbers = append(out.StationNumbers, &pb.StationNumber{
			LineSymbol:      n.LineSymbol,
			LineSymbolColor: n.LineSymbolColor,
			LineSymbolShape: n.LineSymbolShape,
			StationNumber:   n.StationNumber,
		})
	}
	return out
}

func lineToPB(l *domain.Line) *pb.Line {
	if l == nil {
		return nil
	}

	out := &pb.Line{
		Id:              uint32(l.ID),
		NameShort:       l.Name,
		NameKatakana:    l.NameKatakana,
		NameFull:        l.NameFull,
		NameRoman:       deref(l.NameRoman),
		NameChinese:     deref(l.NameChinese),
		NameKorean:      deref(l.NameKorean),
		Color:           l.Color,
		LineType:        uint32(l.Type),
		Status:          uint32(l.Status),
		Station:         stationToPB(l.Station),
		Company:         companyToPB(l.Company),
		AverageDistance: l.AverageDistance,
	}
	for _, sym := range l.Symbols {
		out.LineSymbols = append(out.LineSymbols, &pb.LineSymbol{
			Symbol: sym.Symbol,
			Color:  sym.Color,
			Shape:  sym.Shape,
		})
	}
	return out
}

func companyToPB(c *domain.Company) *pb.Company {
	if c == nil {
		return nil
	}
	return &pb.Company{
		Id:               uint32(c.ID),
		RailroadId:       uint32(c.RailroadID),
		Name:             c.Name,
		NameShort:        c.NameShort,
		NameKatakana:     c.NameKatakana,
		NameFull:         c.NameFull,
		NameEnglishShort: c.NameEnglishShort,
		NameEnglishFull:  c.NameEnglishFull,
		Url:              deref(c.URL),
		Type:             uint32(c.Type),
		Status:           uint32(c.Status),
	}
}

func trainTypeToPB(tt *domain.TrainType) *pb.TrainType {
	if tt == nil {
		return nil
	}

	out := &pb.TrainType{
		Id:           uint32(tt.SSTID),
		TypeId:       uint32(tt.TypeID),
		GroupId:      uint32(tt.GroupID),
		Name:         tt.Name,
		NameKatakana: tt.NameKatakana,
		NameRoman:    deref(tt.NameRoman),
		NameChinese:  deref(tt.NameChinese),
		NameKorean:   deref(tt.NameKorean),
		Color:        tt.Color,
		Line:         lineToPB(tt.Line),
		Direction:    uint32(tt.Direction),
		Kind:         uint32(tt.Kind),
	}
	for _, l := range tt.Lines {
		out.Lines = append(out.Lines, lineToPB(l))
	}
	return out
}

func routeToPB(r *domain.Route) *pb.Route {
	if r == nil {
		return nil
	}

	out := &pb.Route{
		Id:        uint32(r.ID),
		TrainType: trainTypeToPB(r.TrainType),
	}
	for _, stop := range r.Stops {
		out.Stops = append(out.Stops, stationToPB(stop))
	}
	return out
}

func stationsToPB(stations []*domain.Station) []*pb.Station {
	out := make([]*pb.Station, 0, len(stations))
	for _, s := range stations {
		out = append(out, stationToPB(s))
	}
	return out
}

func linesToPB(lines []*domain.Line) []*pb.Line {
	out := make([]*pb.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineToPB(l))
	}
	return out
}

func trainTypesToPB(trainTypes []*domain.TrainType) []*pb.TrainType {
	out := make([]*pb.TrainType, 0, len(trainTypes))
	for _, tt := range trainTypes {
		out = append(out, trainTypeToPB(tt))
	}
	return out
}

func routesToPB(routes []*domain.Route) []*pb.Route {
	out := make([]*pb.Route, 0, len(routes))
	for _, r := range routes {
		out = append(out, routeToPB(r))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
