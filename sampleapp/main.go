package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/anirudhraja/rawproto"
	"github.com/anirudhraja/rawproto/view"
)

type sample struct {
	name string
	msg  proto.Message
}

func main() {
	fmt.Println("🚀 rawproto Sample App - decoding well-known types without a schema")
	fmt.Println(strings.Repeat("=", 70))

	profile, err := structpb.NewStruct(map[string]interface{}{
		"name":      "John Doe",
		"active":    true,
		"followers": 890,
		"interests": []interface{}{"golang", "protobuf"},
		"address": map[string]interface{}{
			"city":    "San Francisco",
			"country": "USA",
		},
	})
	if err != nil {
		log.Fatalf("Failed to build struct: %v", err)
	}

	samples := []sample{
		{name: "Timestamp", msg: timestamppb.New(time.Date(2022, 1, 1, 0, 0, 0, 500, time.UTC))},
		{name: "Duration", msg: durationpb.New(-90 * time.Second)},
		{name: "Int64Value (negative)", msg: wrapperspb.Int64(-42)},
		{name: "DoubleValue", msg: wrapperspb.Double(1250.75)},
		{name: "BytesValue", msg: wrapperspb.Bytes([]byte{0x89, 0x50, 0x4E, 0x47})},
		{name: "Struct", msg: profile},
	}

	dec := rawproto.New(rawproto.Options{})
	for _, s := range samples {
		data, err := proto.MarshalOptions{Deterministic: true}.Marshal(s.msg)
		if err != nil {
			log.Fatalf("Failed to marshal %s: %v", s.name, err)
		}
		showResult(s.name, data, dec)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("📋 gRPC framed input with garbage at the end:")
	fmt.Println(strings.Repeat("=", 70))

	framed := append([]byte{0x00, 0x00, 0x00, 0x00, 0x02}, 0x08, 0x2a, 0xff, 0xff)
	showResult("framed", framed, rawproto.New(rawproto.Options{GRPC: true}))
}

func showResult(name string, data []byte, dec *rawproto.Decoder) {
	fmt.Printf("\n📦 %s (%d bytes): %x\n", name, len(data), data)

	result := dec.Parse(data)
	view.Walk(view.Tree(result), func(n view.Node, level int) {
		indent := strings.Repeat("  ", level+1)
		if n.Kind == view.NodeTrailing {
			fmt.Printf("%s⚠️  trailing %s %s\n", indent, n.Range, n.Primary.Text)
			return
		}
		fmt.Printf("%s• field %d (%s) %s = %s\n", indent, n.Number, n.WireType, n.Primary.Kind, n.Primary.Text)
		for _, alt := range n.Alternatives {
			fmt.Printf("%s    or %s = %s\n", indent, alt.Kind, alt.Text)
		}
	})

	out, err := json.Marshal(rawproto.ToCanonicalJSON(result))
	if err != nil {
		log.Fatalf("Failed to render %s: %v", name, err)
	}
	fmt.Printf("  ✅ JSON: %s\n", out)
}
