// Command xmlavro is a thin CLI over the xmlavro package's two
// conversions: deriving an Avro schema from an XSD document, and building
// an Avro datum from an XML instance against that schema.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avroxsd/xmlavro"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "schema":
		schemaCmd(os.Args[2:])
	case "datum":
		datumCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "xmlavro CLI\n\nUsage:\n  xmlavro schema -xsd path.xsd [-o out.avsc]\n  xmlavro datum -xsd path.xsd -xml path.xml [-o out.json]")
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var xsdPath, out string
	fs.StringVar(&xsdPath, "xsd", "", "path to the XSD document")
	fs.StringVar(&out, "o", "", "output file (defaults to stdout)")
	_ = fs.Parse(args)
	if xsdPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	log, traceID := newTraceLogger()
	defer log.Sync()
	xmlavro.SetLogger(log)

	xsd, err := os.ReadFile(xsdPath)
	if err != nil {
		fatalf(log, traceID, "reading XSD file: %v", err)
	}

	sch, err := xmlavro.CreateSchema(xsd)
	if err != nil {
		fatalf(log, traceID, "creating schema: %v", err)
	}

	writeOutput(log, traceID, out, []byte(sch.String()))
}

func datumCmd(args []string) {
	fs := flag.NewFlagSet("datum", flag.ExitOnError)
	var xsdPath, xmlPath, out string
	fs.StringVar(&xsdPath, "xsd", "", "path to the XSD document")
	fs.StringVar(&xmlPath, "xml", "", "path to the XML instance document")
	fs.StringVar(&out, "o", "", "output file (defaults to stdout)")
	_ = fs.Parse(args)
	if xsdPath == "" || xmlPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	log, traceID := newTraceLogger()
	defer log.Sync()
	xmlavro.SetLogger(log)

	xsd, err := os.ReadFile(xsdPath)
	if err != nil {
		fatalf(log, traceID, "reading XSD file: %v", err)
	}
	xmlDoc, err := os.ReadFile(xmlPath)
	if err != nil {
		fatalf(log, traceID, "reading XML file: %v", err)
	}

	sch, err := xmlavro.CreateSchema(xsd)
	if err != nil {
		fatalf(log, traceID, "creating schema: %v", err)
	}
	datum, err := xmlavro.CreateDatum(sch, xmlDoc)
	if err != nil {
		fatalf(log, traceID, "creating datum: %v", err)
	}

	encoded, err := json.MarshalIndent(datum, "", "  ")
	if err != nil {
		fatalf(log, traceID, "encoding datum as JSON: %v", err)
	}
	writeOutput(log, traceID, out, encoded)
}

// newTraceLogger builds a production (JSON) zap logger stamped with a fresh trace id
// so a run's log lines can be correlated even when several conversions
// interleave in a shared log stream.
func newTraceLogger() (*zap.Logger, string) {
	traceID := uuid.NewString()
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.With(zap.String("trace_id", traceID)), traceID
}

func writeOutput(log *zap.Logger, traceID, out string, data []byte) {
	if out == "" {
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf(log, traceID, "writing output file: %v", err)
	}
	log.Info("wrote output", zap.String("path", out))
}

func fatalf(log *zap.Logger, traceID, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	log.Error(msg, zap.String("trace_id", traceID))
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
