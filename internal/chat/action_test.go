package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/domain"
)

func TestDecode_RoundTrips(t *testing.T) {
	cases := []struct {
		payload string
		want    Action
	}{
		{EncodeSelect(FieldYear, "2024"), Select{Field: FieldYear, Value: "2024"}},
		{EncodeSelect(FieldMonth, "6"), Select{Field: FieldMonth, Value: "6"}},
		{EncodeSelect(FieldCustomer, "17"), Select{Field: FieldCustomer, Value: "17"}},
		{EncodePage(3), Page{Index: 3}},
		{EncodeBack(), Back{}},
		{EncodeCancel(), Cancel{}},
		{EncodeMenu(domain.FlowAdminInvoices), Menu{Flow: domain.FlowAdminInvoices}},
		{EncodeDoc(12345), Doc{DocumentID: 12345}},
		{EncodeDownload("invoice"), Download{Kind: "invoice"}},
		{EncodeDownload("act"), Download{Kind: "act"}},
		{EncodeContact(), Contact{}},
		{EncodeNoop(), Noop{}},
	}

	for _, tc := range cases {
		got, err := Decode(tc.payload)
		require.NoError(t, err, tc.payload)
		assert.Equal(t, tc.want, got, tc.payload)
	}
}

func TestDecode_ExactPayloadShapes(t *testing.T) {
	assert.Equal(t, "v1|sel|year|2024", EncodeSelect(FieldYear, "2024"))
	assert.Equal(t, "v1|page|3", EncodePage(3))
	assert.Equal(t, "v1|back", EncodeBack())
	assert.Equal(t, "v1|menu|admin_invoices", EncodeMenu(domain.FlowAdminInvoices))
}

func TestDecode_Rejects(t *testing.T) {
	payloads := []string{
		"",
		"v1",
		"v0|back",           // unknown version
		"v2|sel|year|2024",  // future version
		"v1|bogus",          // unknown verb
		"v1|sel|year",       // missing value
		"v1|sel|year|",      // empty value
		"v1|sel|color|red",  // unknown field
		"v1|page|abc",       // non-numeric page
		"v1|page|-1",        // negative page
		"v1|page",           // missing index
		"v1|back|extra",     // trailing part
		"v1|menu|superuser", // unknown flow
		"v1|doc|0",          // non-positive id
		"v1|doc|abc",
		"v1|dl|csv", // unknown document kind
		"plain text",
	}
	for _, payload := range payloads {
		_, err := Decode(payload)
		assert.ErrorIs(t, err, domain.ErrUnknownAction, payload)
	}
}
