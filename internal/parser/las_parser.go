// Package parser reads LAS (Log ASCII Standard) well-log files into an
// in-memory measurement table. Only unwrapped LAS 2.0 files are supported;
// the raw null marker is converted to NaN the moment a value is read, so no
// sentinel numeric leaks past this package.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/user/welllog_go/internal/curves"
)

type section int

const (
	secNone section = iota
	secVersion
	secWell
	secCurve
	secOther // ~Parameter, ~Other: recognized, skipped
	secData
)

// headerEntry is one "MNEM.UNIT  DATA : DESCRIPTION" line of a header section.
type headerEntry struct {
	Mnemonic string
	Unit     string
	Data     string
	Desc     string
}

// parseHeaderLine splits a LAS header line into its four fields.
func parseHeaderLine(line string) (headerEntry, error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return headerEntry{}, fmt.Errorf("header line missing '.': %q", line)
	}
	mnem := strings.TrimSpace(line[:dot])
	rest := line[dot+1:]

	// Unit runs from the dot to the first whitespace.
	unitEnd := strings.IndexAny(rest, " \t")
	if unitEnd < 0 {
		unitEnd = len(rest)
	}
	unit := rest[:unitEnd]
	rest = rest[unitEnd:]

	// Description follows the last colon; data sits in between.
	data, desc := rest, ""
	if colon := strings.LastIndex(rest, ":"); colon >= 0 {
		data, desc = rest[:colon], rest[colon+1:]
	}
	return headerEntry{
		Mnemonic: strings.ToUpper(mnem),
		Unit:     strings.TrimSpace(unit),
		Data:     strings.TrimSpace(data),
		Desc:     strings.TrimSpace(desc),
	}, nil
}

func sectionFor(line string) section {
	if len(line) < 2 {
		return secOther
	}
	switch strings.ToUpper(line[1:2]) {
	case "V":
		return secVersion
	case "W":
		return secWell
	case "C":
		return secCurve
	case "A":
		return secData
	default:
		return secOther
	}
}

// ParseFile reads the LAS file at path.
func ParseFile(path string) (*WellLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open LAS file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a LAS document from r. It fails on wrapped files, a missing
// ~Curve section, or a missing ~ASCII section; malformed data rows are
// skipped with a warning rather than aborting the read.
func Parse(r io.Reader) (*WellLog, error) {
	log := newWellLog()
	cur := secNone
	var mnemonics []string // all curves including the depth index
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "~") {
			cur = sectionFor(line)
			continue
		}

		switch cur {
		case secVersion:
			entry, err := parseHeaderLine(line)
			if err != nil {
				log.Warnings = append(log.Warnings, fmt.Sprintf("line %d: %v", lineNo, err))
				continue
			}
			if entry.Mnemonic == "WRAP" && strings.EqualFold(entry.Data, "YES") {
				return nil, fmt.Errorf("wrapped LAS files are not supported")
			}
		case secWell:
			entry, err := parseHeaderLine(line)
			if err != nil {
				log.Warnings = append(log.Warnings, fmt.Sprintf("line %d: %v", lineNo, err))
				continue
			}
			switch entry.Mnemonic {
			case "NULL":
				v, err := strconv.ParseFloat(entry.Data, 64)
				if err != nil {
					log.Warnings = append(log.Warnings,
						fmt.Sprintf("line %d: unreadable NULL value %q, keeping %.2f", lineNo, entry.Data, log.NullValue))
					continue
				}
				log.NullValue = v
			case "WELL":
				// LAS 1.2 carries the well name in the description field.
				if entry.Data != "" {
					log.WellName = entry.Data
				} else {
					log.WellName = entry.Desc
				}
			}
		case secCurve:
			entry, err := parseHeaderLine(line)
			if err != nil {
				log.Warnings = append(log.Warnings, fmt.Sprintf("line %d: %v", lineNo, err))
				continue
			}
			mnemonics = append(mnemonics, entry.Mnemonic)
		case secData:
			if len(mnemonics) == 0 {
				return nil, fmt.Errorf("data section encountered before ~Curve section")
			}
			fields := strings.Fields(line)
			if len(fields) != len(mnemonics) {
				log.Warnings = append(log.Warnings,
					fmt.Sprintf("line %d: %d values, want %d; row skipped", lineNo, len(fields), len(mnemonics)))
				continue
			}
			row := make([]float64, len(fields))
			bad := false
			for i, field := range fields {
				v, err := strconv.ParseFloat(field, 64)
				if err != nil {
					log.Warnings = append(log.Warnings,
						fmt.Sprintf("line %d: unreadable value %q; row skipped", lineNo, field))
					bad = true
					break
				}
				if v == log.NullValue {
					v = math.NaN()
				}
				row[i] = v
			}
			if bad {
				continue
			}
			if math.IsNaN(row[0]) {
				log.Warnings = append(log.Warnings,
					fmt.Sprintf("line %d: null depth; row skipped", lineNo))
				continue
			}
			log.Table.Depths = append(log.Table.Depths, row[0])
			for i, m := range mnemonics[1:] {
				log.Table.Columns[m] = append(log.Table.Columns[m], row[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read LAS data: %w", err)
	}

	if len(mnemonics) == 0 {
		return nil, fmt.Errorf("no ~Curve section found")
	}
	log.DepthName = mnemonics[0]
	log.CurveNames = append(log.CurveNames, mnemonics[1:]...)
	return log, nil
}

// CurveTable converts the ingested grid into a curves.Table, preserving
// curve order from the file.
func (w *WellLog) CurveTable() curves.Table {
	t := curves.New(w.Table.Depths)
	for _, name := range w.CurveNames {
		t.AddColumn(name, w.Table.Columns[name])
	}
	return t
}
