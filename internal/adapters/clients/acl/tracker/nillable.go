package tracker

import (
	"encoding/xml"
	"strings"
)

// XSINamespace is the XML Schema instance namespace. The envelope binds it
// to the xsi prefix, and XSDNamespace to xsd.
const (
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
)

// Nillable is an element TeamForge may send as xsi:nil. Marshalling keeps
// the distinction, so a nil date goes back as nil and not as an empty
// xsd:dateTime. The zero value is nil, and so is an absent element.
type Nillable struct {
	Value string
	Valid bool
}

// MarshalXML writes the value, or an empty element with xsi:nil="true".
func (n Nillable) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !n.Valid {
		start.Attr = append(start.Attr, xsiAttr("nil", "true"))
		return e.EncodeElement("", start)
	}
	return e.EncodeElement(n.Value, start)
}

// UnmarshalXML reads the element text unless the element is marked nil.
func (n *Nillable) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if isNil(start) {
		*n = Nillable{}
		return d.Skip()
	}
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	*n = Nillable{Value: s, Valid: true}
	return nil
}

// TypedValue is one item of SoapFieldValues.values, an xsd:anyType array
// whose items name their own type. Type is the XML Schema local name, e.g.
// "string" or "dateTime"; it is written back under the xsd prefix.
type TypedValue struct {
	Nillable
	Type string
}

// MarshalXML writes the item with its xsi:type, or as nil.
func (v TypedValue) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if v.Valid && v.Type != "" {
		start.Attr = append(start.Attr, xsiAttr("type", "xsd:"+v.Type))
	}
	return v.Nillable.MarshalXML(e, start)
}

// UnmarshalXML records the item's xsi:type before reading its value.
func (v *TypedValue) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v.Type = ""
	for _, a := range start.Attr {
		if isXSI(a.Name, "type") {
			v.Type = localName(a.Value)
		}
	}
	return v.Nillable.UnmarshalXML(d, start)
}

// xsiAttr names the attribute with the literal xsi prefix. The encoder would
// otherwise invent a prefix from the namespace URL.
func xsiAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: "xsi:" + local}, Value: value}
}

// isXSI matches a resolved xsi attribute, or a literal xsi prefix the
// document never declared.
func isXSI(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == XSINamespace || name.Space == "xsi")
}

func isNil(start xml.StartElement) bool {
	for _, a := range start.Attr {
		if isXSI(a.Name, "nil") && (a.Value == "true" || a.Value == "1") {
			return true
		}
	}
	return false
}

// localName strips a QName prefix: "xsd:string" becomes "string".
func localName(qname string) string {
	return qname[strings.LastIndex(qname, ":")+1:]
}
