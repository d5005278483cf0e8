package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type Config struct {
	Color    bool `envconfig:"COLOR" default:"true"`
	MaxWidth int  `envconfig:"MAX_WIDTH" default:"120"`
}

func main() {
	var config Config
	if err := envconfig.Process("inspect", &config); err != nil {
		log.Fatal("Error while reading configuration: ", err)
	}
	if !config.Color {
		color.Disable()
	}

	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (msg:, user:, work:pending:, work:processing:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append([]string{key, kindOf(key), fmt.Sprintf("%d", len(v)), render(v, config.MaxWidth)})
				return nil
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(color.New(color.FgCyan, color.OpBold).Render(
		fmt.Sprintf("%s  prefix=%q  keys=%d", *dbPath, *prefix, count)))
	table.Render()
}

func kindOf(key string) string {
	switch {
	case strings.HasPrefix(key, "msg:"):
		return "MESSAGE"
	case strings.HasPrefix(key, "user:"):
		return "USER"
	case strings.HasPrefix(key, "work:pending:"):
		return "TASK_PENDING"
	case strings.HasPrefix(key, "work:processing:"):
		return "TASK_PROCESSING"
	default:
		return "RAW"
	}
}

// render prints a stored record as compact JSON, or a placeholder when it is not one.
func render(value []byte, maxWidth int) string {
	var record structpb.Struct
	if err := proto.Unmarshal(value, &record); err != nil {
		return color.Red.Render("<undecodable>")
	}
	out, err := protojson.MarshalOptions{Multiline: false}.Marshal(&record)
	if err != nil {
		return color.Red.Render("<undecodable>")
	}
	return truncate(string(out), maxWidth)
}

// truncate keeps the first maxWidth characters of text. A non-positive maxWidth disables it.
func truncate(text string, maxWidth int) string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return text
	}
	return string([]rune(text)[:maxWidth]) + "..."
}
