package sanitizer

// ProfileType selects which allow-list applies to a profile payload.
type ProfileType string

const (
	Customer   ProfileType = "customer"
	Contractor ProfileType = "contractor"
)

// OwnerIDField is injected into every sanitized profile and can never be set
// from caller input.
const OwnerIDField = "user_id"

// TempIDPrefix marks client-generated placeholder ids that must never be
// persisted.
const TempIDPrefix = "temp-"

const idField = "id"

var geoFields = map[string]struct{}{
	"latitude":  {},
	"longitude": {},
}

// addressFields always survive sanitization, even when blank.
var addressFields = map[string]struct{}{
	"address":  {},
	"city":     {},
	"state":    {},
	"zip_code": {},
}

var customerFields = fieldSet(
	"id",
	"first_name",
	"last_name",
	"phone",
	"address",
	"city",
	"state",
	"zip_code",
	"bio",
	"profile_photo",
	"email_notifications",
	"sms_notifications",
	"preferred_contact_method",
	"home_type",
	"home_age",
	"latitude",
	"longitude",
)

var contractorFields = fieldSet(
	"id",
	"first_name",
	"last_name",
	"business_name",
	"phone",
	"business_email",
	"license_number",
	"address",
	"city",
	"state",
	"zip_code",
	"specialties",
	"years_experience",
	"email_notifications",
	"sms_notifications",
	"bio",
	"profile_photo",
	"preferred_contact_method",
	"service_radius",
	"business_type",
	"tax_id",
	"w9_on_file",
	"insurance_provider",
	"insurance_policy_number",
	"stripe_connect_account_id",
	"latitude",
	"longitude",
)

var scheduledJobFields = fieldSet(
	"id",
	"quote_id",
	"contractor_id",
	"job_request_id",
	"title",
	"job_date",
	"start_time",
	"end_time",
	"status",
	"location",
	"job_value",
	"notes",
	"client_name",
	"client_email",
	"client_phone",
)

func fieldSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// allowedProfileFields returns the allow-list for a profile type. Unknown
// types get the customer list, matching the lenient contract of the API.
func allowedProfileFields(t ProfileType) map[string]struct{} {
	if t == Contractor {
		return contractorFields
	}
	return customerFields
}
