// Package session holds the CollabNet login and logoff messages.
package session

import "encoding/xml"

// LoginRequest is the login operation body.
type LoginRequest struct {
	XMLName  xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service login"`
	UserName string   `xml:"userName"`
	Password string   `xml:"password"`
}

// LoginResponse carries the session id.
type LoginResponse struct {
	XMLName   xml.Name `xml:"loginResponse"`
	SessionID string   `xml:"loginReturn"`
}

// LogoffRequest is the logoff operation body.
type LogoffRequest struct {
	XMLName   xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service logoff"`
	UserName  string   `xml:"userName"`
	SessionID string   `xml:"sessionId"`
}

// LogoffResponse is the (empty) logoff result.
type LogoffResponse struct {
	XMLName xml.Name `xml:"logoffResponse"`
}
