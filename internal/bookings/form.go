package bookings

import (
	"strconv"
	"strings"

	"github.com/flexora/physio-booking/internal/catalog"
	"github.com/flexora/physio-booking/internal/messaging/templates"
	"github.com/flexora/physio-booking/internal/messaging/whatsapp"
)

const (
	emailFallback   = "Not provided"
	messageFallback = "None"
	serviceFallback = "Unknown service"
	priceFallback   = "N/A"
)

// Form holds the booking form fields as typed by the patient.
type Form struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	ServiceID string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Message   string `json:"message"`
}

// Validate checks that every required field is present. Formats are not checked.
func (f Form) Validate() error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"full_name", f.FullName},
		{"phone", f.Phone},
		{"service", f.ServiceID},
		{"date", f.Date},
		{"time", f.Time},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

var requestTemplate = templates.MustParse("booking_request", `*New Booking Request*

*Name:* {{.Name}}
*Phone:* {{.Phone}}
*Email:* {{.Email}}
*Service:* {{.Service}}
*Price:* ₹{{.Price}}
*Date:* {{.Date}}
*Time:* {{.Time}}
*Message:* {{.Message}}`)

// Composition is the hand-off produced for a valid form.
type Composition struct {
	Message     string
	URL         string
	Service     catalog.Service
	KnownPrice  bool
	ServiceName string
}

// Composer turns a form into a pre-filled WhatsApp message. It performs no I/O.
type Composer struct {
	catalog   *catalog.Catalog
	host      string
	recipient string
}

// NewComposer creates a composer that links to recipient on host (e.g. wa.me).
func NewComposer(c *catalog.Catalog, host, recipient string) *Composer {
	if c == nil {
		c = catalog.Default()
	}
	return &Composer{catalog: c, host: host, recipient: recipient}
}

// Compose validates the form, renders the message and builds the deep link.
// An unknown service id renders placeholders rather than failing.
func (c *Composer) Compose(f Form) (*Composition, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	svc, known := c.catalog.Lookup(f.ServiceID)
	name, price := serviceFallback, priceFallback
	if known {
		name, price = svc.Name, strconv.Itoa(svc.Price)
	}

	text, err := requestTemplate.Render(map[string]string{
		"Name":    f.FullName,
		"Phone":   f.Phone,
		"Email":   orFallback(f.Email, emailFallback),
		"Service": name,
		"Price":   price,
		"Date":    f.Date,
		"Time":    f.Time,
		"Message": orFallback(f.Message, messageFallback),
	})
	if err != nil {
		return nil, err
	}

	return &Composition{
		Message:     text,
		URL:         whatsapp.Link(c.host, c.recipient, text),
		Service:     svc,
		KnownPrice:  known,
		ServiceName: name,
	}, nil
}

// ChatURL is the plain "chat with us" link without a message.
func (c *Composer) ChatURL() string {
	return whatsapp.ChatLink(c.host, c.recipient)
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
