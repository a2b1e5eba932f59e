package acl

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl/tracker"
)

const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	soapContentType   = "text/xml; charset=utf-8"
)

var errMissingBody = errors.New("SOAP envelope has no Body")

// requestEnvelope binds the xsi and xsd prefixes that nil and typed values
// in the body refer to.
type requestEnvelope struct {
	XMLName xml.Name    `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	XSI     string      `xml:"xmlns:xsi,attr"`
	XSD     string      `xml:"xmlns:xsd,attr"`
	Body    requestBody `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

// requestBody holds one operation element. Its name and namespace come from
// the XMLName field of the content's type.
type requestBody struct {
	Content any
}

// Fault is a SOAP 1.1 fault.
type Fault struct {
	Code   string      `xml:"faultcode"`
	String string      `xml:"faultstring"`
	Detail faultDetail `xml:"detail"`
}

type faultDetail struct {
	Content string `xml:",innerxml"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("SOAP fault %s: %s", f.Code, f.String)
}

// teamForgeFaults lists the fault classes the server reports. Axis puts the
// class name in faultcode, faultstring or the detail element depending on
// the version, so all three are searched.
var teamForgeFaults = []string{
	"NoSuchObjectFault",
	"LoginFault",
	"InvalidSessionFault",
	"PermissionDeniedFault",
	"IllegalArgumentFault",
	"InvalidFilterFault",
	"VersionMismatchFault",
}

// Name returns the TeamForge fault class, or "" for any other fault.
func (f *Fault) Name() string {
	for _, name := range teamForgeFaults {
		if strings.Contains(f.Code, name) ||
			strings.Contains(f.String, name) ||
			strings.Contains(f.Detail.Content, name) {
			return name
		}
	}
	return ""
}

func marshalEnvelope(content any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(requestEnvelope{
		XSI:  tracker.XSINamespace,
		XSD:  tracker.XSDNamespace,
		Body: requestBody{Content: content},
	}); err != nil {
		return nil, fmt.Errorf("encoding SOAP envelope: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeEnvelope reads a SOAP envelope. A fault is returned as a value, not
// an error. Otherwise the first Body child is decoded into resp, which may be
// nil when the caller does not need the result.
func decodeEnvelope(r io.Reader, resp any) (*Fault, error) {
	dec := xml.NewDecoder(r)
	inBody := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errMissingBody
		}
		if err != nil {
			return nil, fmt.Errorf("reading SOAP envelope: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case !inBody:
				inBody = t.Name.Local == "Body"
			case t.Name.Local == "Fault":
				var f Fault
				if err := dec.DecodeElement(&f, &t); err != nil {
					return nil, fmt.Errorf("decoding SOAP fault: %w", err)
				}
				return &f, nil
			case resp == nil:
				return nil, nil
			default:
				if err := dec.DecodeElement(resp, &t); err != nil {
					return nil, fmt.Errorf("decoding %s: %w", t.Name.Local, err)
				}
				return nil, nil
			}
		case xml.EndElement:
			if inBody && t.Name.Local == "Body" {
				return nil, nil
			}
		}
	}
}
