// Command archive_inspect dumps the content of a message archive as a
// table, for debugging a deployment's BadgerDB without the service
// running.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"convo/domain"
)

func main() {
	dbPath := flag.String("db", "", "path to the archive BadgerDB")
	conversation := flag.String("conversation", "", "restrict to one conversation id")
	colours := flag.Bool("colours", true, "colorized header output")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db flag")
	}

	header := fmt.Sprintf("  ====== message archive %s ======", *dbPath)
	if *colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("error while opening badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Conversation", "Created At", "Sender", "Content"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	prefix := []byte("msg:")
	if *conversation != "" {
		prefix = fmt.Appendf(nil, "msg:%s:", *conversation)
	}

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var msg domain.Message
				if err := json.Unmarshal(value, &msg); err != nil {
					// Keep scanning, one bad row should not hide the rest.
					fmt.Printf("error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append([]string{
					msg.ConversationID.String(),
					msg.CreatedAt.Format(time.RFC3339),
					msg.SenderID,
					msg.Content,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("error while scanning: ", err)
	}

	table.Render()
	fmt.Printf("\n%d archived messages\n", count)
}
