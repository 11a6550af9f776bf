//go:build ignore

// Generates sample inputs for trying csvop by hand:
//
//	cd testdata && go run generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"
)

type User struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

func (u User) record() []string {
	return []string{
		strconv.FormatInt(u.ID, 10),
		u.Name,
		strconv.Itoa(int(u.Age)),
		strconv.FormatBool(u.Active),
		strconv.FormatFloat(u.Score, 'g', -1, 64),
	}
}

var header = []string{"id", "name", "age", "active", "score"}

func main() {
	users := []User{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
		{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2},
		{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8},
	}

	writeCSV("users.csv", users)
	writeParquet("users.parquet", users)
	writeXLSX("users.xlsx", users)

	log.Println("Generated users.csv, users.parquet and users.xlsx with 5 users")
}

func writeCSV(path string, users []User) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	_ = w.Write(header)
	for _, u := range users {
		_ = w.Write(u.record())
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}

func writeParquet(path string, users []User) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	if _, err := writer.Write(users); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeXLSX(path string, users []User) {
	book := excelize.NewFile()
	defer book.Close()

	rows := [][]string{header}
	for _, u := range users {
		rows = append(rows, u.record())
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatal(err)
		}
		if err := book.SetSheetRow("Sheet1", cell, &row); err != nil {
			log.Fatal(err)
		}
	}
	if err := book.SaveAs(path); err != nil {
		log.Fatal(err)
	}
}
