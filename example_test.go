package rawproto_test

import (
	"fmt"
	"log"

	"github.com/anirudhraja/rawproto"
	"github.com/anirudhraja/rawproto/view"
)

func ExampleDecodeText() {
	result, err := rawproto.DecodeText("08 96 01 12 03 68 65 79", rawproto.Options{})
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range result.Fields {
		fmt.Println(f.Number, f.WireType, f.Primary())
	}
	// Output:
	// 1 varint 150
	// 2 length-delimited "hey"
}

func ExampleExportJSON() {
	result, err := rawproto.DecodeText("CJYBEgNoZXk=", rawproto.Options{})
	if err != nil {
		log.Fatal(err)
	}

	out, err := rawproto.ExportJSON(result)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	// Output:
	// {
	//   "field_1": 150,
	//   "field_2": "hey"
	// }
}

func ExampleDecoder_Parse() {
	dec := rawproto.New(rawproto.Options{GRPC: true})

	result := dec.Parse([]byte{0x00, 0x00, 0x00, 0x00, 0x04, 0x08, 0x01, 0x0f, 0xaa})

	view.Walk(view.Tree(result), func(n view.Node, level int) {
		fmt.Println(level, n.Kind, n.Range, n.Primary.Text)
	})
	// Output:
	// 0 field [0,2) 1
	// 0 trailing [2,4) 0faa
}
