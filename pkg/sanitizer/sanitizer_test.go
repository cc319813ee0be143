package sanitizer

import (
	"math"
	"reflect"
	"testing"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name        string
		raw         map[string]any
		profileType ProfileType
		userID      string
		want        map[string]any
	}{
		{
			name: "drops unknown fields keeps empty address drops NaN latitude",
			raw: map[string]any{
				"address":  "",
				"city":     "Troy",
				"latitude": math.NaN(),
				"foo":      "bar",
			},
			profileType: Customer,
			userID:      "u1",
			want: map[string]any{
				"user_id": "u1",
				"address": "",
				"city":    "Troy",
			},
		},
		{
			name:        "empty payload yields owner id only",
			raw:         map[string]any{},
			profileType: Customer,
			userID:      "u2",
			want:        map[string]any{"user_id": "u2"},
		},
		{
			name: "temporary id is never persisted",
			raw: map[string]any{
				"id":         "temp-abc",
				"first_name": "Dana",
			},
			profileType: Customer,
			userID:      "u3",
			want: map[string]any{
				"user_id":    "u3",
				"first_name": "Dana",
			},
		},
		{
			name: "real id survives",
			raw: map[string]any{
				"id": "550e8400-e29b-41d4-a716-446655440000",
			},
			profileType: Customer,
			userID:      "u3",
			want: map[string]any{
				"user_id": "u3",
				"id":      "550e8400-e29b-41d4-a716-446655440000",
			},
		},
		{
			name: "non-string id dropped",
			raw: map[string]any{
				"id": 42,
			},
			profileType: Customer,
			userID:      "u3",
			want:        map[string]any{"user_id": "u3"},
		},
		{
			name: "caller cannot override owner id",
			raw: map[string]any{
				"user_id": "attacker",
				"phone":   "+15551234567",
			},
			profileType: Customer,
			userID:      "owner",
			want: map[string]any{
				"user_id": "owner",
				"phone":   "+15551234567",
			},
		},
		{
			name: "finite coordinates kept infinite dropped",
			raw: map[string]any{
				"latitude":  42.7284,
				"longitude": math.Inf(1),
			},
			profileType: Contractor,
			userID:      "c1",
			want: map[string]any{
				"user_id":  "c1",
				"latitude": 42.7284,
			},
		},
		{
			name: "string coordinates dropped",
			raw: map[string]any{
				"latitude": "42.7284",
			},
			profileType: Customer,
			userID:      "u4",
			want:        map[string]any{"user_id": "u4"},
		},
		{
			name: "address fields coerce null and trim",
			raw: map[string]any{
				"address":  nil,
				"city":     "  Troy  ",
				"state":    "MI",
				"zip_code": 48084,
			},
			profileType: Customer,
			userID:      "u5",
			want: map[string]any{
				"user_id":  "u5",
				"address":  nil,
				"city":     "Troy",
				"state":    "MI",
				"zip_code": "48084",
			},
		},
		{
			name: "contractor-only fields rejected for customers",
			raw: map[string]any{
				"business_name":  "Troy Plumbing",
				"license_number": "L-100",
				"bio":            "hi",
			},
			profileType: Customer,
			userID:      "u6",
			want: map[string]any{
				"user_id": "u6",
				"bio":     "hi",
			},
		},
		{
			name: "contractor fields accepted for contractors",
			raw: map[string]any{
				"business_name":             "Troy Plumbing",
				"stripe_connect_account_id": "acct_123",
				"specialties":               []any{"plumbing", "heating"},
				"years_experience":          12,
			},
			profileType: Contractor,
			userID:      "c2",
			want: map[string]any{
				"user_id":                   "c2",
				"business_name":             "Troy Plumbing",
				"stripe_connect_account_id": "acct_123",
				"specialties":               []any{"plumbing", "heating"},
				"years_experience":          12,
			},
		},
		{
			name: "whitespace-only strings dropped non-strings passed through",
			raw: map[string]any{
				"bio":                 "   ",
				"email_notifications": true,
				"home_age":            float64(25),
				"phone":               nil,
			},
			profileType: Customer,
			userID:      "u7",
			want: map[string]any{
				"user_id":             "u7",
				"email_notifications": true,
				"home_age":            float64(25),
			},
		},
		{
			name: "unknown profile type falls back to customer allow-list",
			raw: map[string]any{
				"first_name":    "Dana",
				"business_name": "nope",
			},
			profileType: ProfileType("admin"),
			userID:      "u8",
			want: map[string]any{
				"user_id":    "u8",
				"first_name": "Dana",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Profile(tt.raw, tt.profileType, tt.userID)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Profile() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestProfile_OutputKeysSubsetOfAllowList(t *testing.T) {
	raw := map[string]any{
		"first_name": "Dana",
		"last_name":  "Lee",
		"address":    "1 Main St",
		"garbage":    "x",
		"user_id":    "spoofed",
		"latitude":   1.0,
		"id":         "real-id",
	}

	got := Profile(raw, Customer, "owner-1")
	for key := range got {
		if key == OwnerIDField {
			continue
		}
		if _, ok := customerFields[key]; !ok {
			t.Errorf("output key %q is not in the customer allow-list", key)
		}
	}
	if got[OwnerIDField] != "owner-1" {
		t.Errorf("owner id = %v, want owner-1", got[OwnerIDField])
	}
}

func TestProfile_Idempotent(t *testing.T) {
	raw := map[string]any{
		"first_name": "  Dana ",
		"address":    " 1 Main St ",
		"city":       nil,
		"latitude":   42.5,
		"bio":        "likes plants",
	}

	once := Profile(raw, Customer, "u1")
	twice := Profile(once, Customer, "u1")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the payload:\nonce  = %#v\ntwice = %#v", once, twice)
	}
}

func TestScheduledJob(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want map[string]any
	}{
		{
			name: "allow-listed fields trimmed and kept",
			raw: map[string]any{
				"contractor_id":  "c1",
				"job_request_id": "j1",
				"title":          "  Fix sink  ",
				"job_date":       "2026-09-12",
				"start_time":     "09:00",
				"job_value":      350.0,
				"internal_flag":  true,
			},
			want: map[string]any{
				"contractor_id":  "c1",
				"job_request_id": "j1",
				"title":          "Fix sink",
				"job_date":       "2026-09-12",
				"start_time":     "09:00",
				"job_value":      350.0,
			},
		},
		{
			name: "nulls and blanks dropped",
			raw: map[string]any{
				"notes":        nil,
				"client_name":  "  ",
				"client_email": "a@b.co",
			},
			want: map[string]any{
				"client_email": "a@b.co",
			},
		},
		{
			name: "no owner id injected",
			raw:  map[string]any{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduledJob(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScheduledJob() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestHasProfileFields(t *testing.T) {
	if HasProfileFields(map[string]any{"user_id": "u1"}) {
		t.Error("owner id alone should not count as persistable fields")
	}
	if !HasProfileFields(map[string]any{"user_id": "u1", "city": "Troy"}) {
		t.Error("expected persistable fields to be detected")
	}
}
