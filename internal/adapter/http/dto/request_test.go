package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
)

func validRequest() CreateTransferRequest {
	return CreateTransferRequest{
		Sender:    PartyRefPayload{Kind: "admin", ID: "admin-01"},
		Recipient: PartyRefPayload{Kind: "rider", ID: "r-100"},
		Amount:    decimal.NewFromInt(150),
		Note:      "bonus",
	}
}

func TestCreateTransferRequestValidation(t *testing.T) {
	req := validRequest()
	if err := Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	missingID := validRequest()
	missingID.Sender.ID = ""
	err := Validate(&missingID)
	if err == nil {
		t.Fatal("expected validation error for missing sender id")
	}
	if fields := ValidationFields(err); fields["id"] == "" {
		t.Fatalf("expected field message keyed by json tag, got %+v", fields)
	}

	badKind := validRequest()
	badKind.Recipient.Kind = "vendor"
	if err := Validate(&badKind); err == nil {
		t.Fatal("expected validation error for unknown kind")
	}
}

func TestCreateTransferRequestToUseCaseInput(t *testing.T) {
	req := validRequest()

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.Sender.Kind != domain.PartyKindAdmin || input.Sender.ID != "admin-01" {
		t.Fatalf("unexpected sender %+v", input.Sender)
	}
	if input.Recipient.Kind != domain.PartyKindRider || input.Recipient.ID != "r-100" {
		t.Fatalf("unexpected recipient %+v", input.Recipient)
	}
	if !input.Amount.Equal(decimal.NewFromInt(150)) || input.Note != "bonus" {
		t.Fatalf("unexpected input %+v", input)
	}
}

func TestPartyRefPayloadToDomainRejectsUnknownKind(t *testing.T) {
	p := PartyRefPayload{Kind: "vendor", ID: "v-1"}
	if _, err := p.ToDomain(); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestCreatePartyRequestToUseCaseInput(t *testing.T) {
	req := CreatePartyRequest{
		ID:             "r-100",
		Name:           "Ade",
		OpeningBalance: decimal.NewFromInt(50),
	}

	input := req.ToUseCaseInput(domain.PartyKindRider)
	if input.Kind != domain.PartyKindRider || input.ID != "r-100" || input.Name != "Ade" {
		t.Fatalf("unexpected input %+v", input)
	}
	if !input.OpeningBalance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected opening balance %s", input.OpeningBalance)
	}
}
