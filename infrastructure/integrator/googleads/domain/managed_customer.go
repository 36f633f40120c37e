package googleadsdomain

import (
	"encoding/xml"
	"fmt"
)

const (
	soapEnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

	ManagedCustomerPageSize = 500
)

// ManagedCustomerFields são os campos pedidos ao ManagedCustomerService
var ManagedCustomerFields = []string{"CustomerId", "Name", "CanManageClients", "AccountLabels", "CurrencyCode"}

// ManagementNamespace retorna o namespace do serviço de contas gerenciadas
func ManagementNamespace(version string) string {
	return fmt.Sprintf("https://adwords.google.com/api/adwords/mcm/%s", version)
}

// ManagedCustomerRequest é o envelope SOAP de ManagedCustomerService.get
type ManagedCustomerRequest struct {
	XMLName xml.Name          `xml:"soapenv:Envelope"`
	SoapNS  string            `xml:"xmlns:soapenv,attr"`
	Header  RequestHeaderWrap `xml:"soapenv:Header"`
	Body    struct {
		Get ManagedCustomerGet `xml:"get"`
	} `xml:"soapenv:Body"`
}

type RequestHeaderWrap struct {
	RequestHeader RequestHeader `xml:"RequestHeader"`
}

type RequestHeader struct {
	Namespace        string `xml:"xmlns,attr"`
	ClientCustomerID string `xml:"clientCustomerId"`
	DeveloperToken   string `xml:"developerToken"`
	UserAgent        string `xml:"userAgent"`
}

type ManagedCustomerGet struct {
	Namespace string          `xml:"xmlns,attr"`
	Selector  ServiceSelector `xml:"serviceSelector"`
}

type ServiceSelector struct {
	Fields []SelectorField `xml:"fields"`
	Paging Paging          `xml:"paging"`
}

type SelectorField struct {
	Namespace string `xml:"xmlns,attr"`
	Value     string `xml:",chardata"`
}

type Paging struct {
	Namespace     string `xml:"xmlns,attr"`
	StartIndex    int    `xml:"startIndex"`
	NumberResults int    `xml:"numberResults"`
}

// NewManagedCustomerRequest monta a requisição de uma página de contas
func NewManagedCustomerRequest(version, clientCustomerID, developerToken, userAgent string, startIndex int) *ManagedCustomerRequest {
	commonNS := CommonNamespace(version)
	managementNS := ManagementNamespace(version)

	req := &ManagedCustomerRequest{SoapNS: soapEnvelopeNamespace}
	req.Header.RequestHeader = RequestHeader{
		Namespace:        managementNS,
		ClientCustomerID: clientCustomerID,
		DeveloperToken:   developerToken,
		UserAgent:        userAgent,
	}

	fields := make([]SelectorField, 0, len(ManagedCustomerFields))
	for _, field := range ManagedCustomerFields {
		fields = append(fields, SelectorField{Namespace: commonNS, Value: field})
	}

	req.Body.Get = ManagedCustomerGet{
		Namespace: managementNS,
		Selector: ServiceSelector{
			Fields: fields,
			Paging: Paging{
				Namespace:     commonNS,
				StartIndex:    startIndex,
				NumberResults: ManagedCustomerPageSize,
			},
		},
	}

	return req
}

// ManagedCustomerResponse é a resposta SOAP; os nomes são casados sem namespace
type ManagedCustomerResponse struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		GetResponse struct {
			Rval ManagedCustomerPage `xml:"rval"`
		} `xml:"getResponse"`
		Fault *SoapFault `xml:"Fault"`
	} `xml:"Body"`
}

type ManagedCustomerPage struct {
	TotalNumEntries int               `xml:"totalNumEntries"`
	Entries         []ManagedCustomer `xml:"entries"`
}

type ManagedCustomer struct {
	Name             string         `xml:"name"`
	CustomerID       string         `xml:"customerId"`
	CanManageClients bool           `xml:"canManageClients"`
	CurrencyCode     string         `xml:"currencyCode"`
	AccountLabels    []AccountLabel `xml:"accountLabels"`
}

type AccountLabel struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
}

// SoapFault é o erro devolvido pelos serviços SOAP
type SoapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

func (f *SoapFault) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.String)
}
