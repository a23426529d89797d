//go:build ignore

// Manual smoke test against a running server:
//
//	go run scripts/smoke_client.go -addr localhost:50051 -station 1130208
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/TrainLCD/StationAPI/internal/pb"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "server address")
	stationID := flag.Uint("station", 1130208, "station_cd to look up")
	name := flag.String("name", "しんじゅく", "station name to search")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()

	client := pb.NewStationApiClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	single, err := client.GetStationById(ctx, &pb.GetStationByIdRequest{Id: uint32(*stationID)})
	if err != nil {
		log.Fatalf("GetStationById failed: %v", err)
	}
	s := single.GetStation()
	fmt.Printf("station %d: %s (%s), %d lines\n", s.GetId(), s.GetName(), s.GetNameRoman(), len(s.GetLines()))
	for _, n := range s.GetStationNumbers() {
		fmt.Printf("  number %s\n", n.GetStationNumber())
	}

	byName, err := client.GetStationsByName(ctx, &pb.GetStationsByNameRequest{StationName: *name, Limit: 5})
	if err != nil {
		log.Fatalf("GetStationsByName failed: %v", err)
	}
	fmt.Printf("search %q: %d hits\n", *name, len(byName.GetStations()))
	for _, hit := range byName.GetStations() {
		fmt.Printf("  %d %s (%s)\n", hit.GetId(), hit.GetName(), hit.GetNameKatakana())
	}
}
