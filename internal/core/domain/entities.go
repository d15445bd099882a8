package domain

// Role is the coarse role of a session: customer or employee
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

// FineRole distinguishes employees. Only meaningful when the coarse role is employee.
type FineRole string

const (
	FineRoleStaff FineRole = "BANK_STAFF"
	FineRoleAdmin FineRole = "BANK_ADMIN"
)

// CoarseRole maps a raw role claim to a coarse role.
// The two employee sentinels map to employee, everything else to customer.
func CoarseRole(claim string) Role {
	switch FineRole(claim) {
	case FineRoleStaff, FineRoleAdmin:
		return RoleEmployee
	default:
		return RoleCustomer
	}
}

// Business constants carried over from the customer and employee screens
const (
	FineAmount         = 500.0
	LTVRatio           = 0.75
	SuggestedOfferRate = 0.90
	MinAmountSeeking   = 1000.0
	MinNetWeight       = 0.1
)

// Loan is one row of the cached loan list (customer or employee dashboard)
type Loan struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Date            string     `json:"date"`
	Kn              string     `json:"kn,omitempty"`
	Name            string     `json:"name,omitempty"`
	Amount          float64    `json:"amount,omitempty"`
	FinalValue      *float64   `json:"finalValue"`
	QualityIndex    *float64   `json:"qualityIndex,omitempty"`
	RejectionReason *string    `json:"rejectionReason"`
	Status          LoanStatus `json:"status"`
}

// Applicant is the applicant block of a loan detail
type Applicant struct {
	FullName     string `json:"fullName"`
	KnNumber     string `json:"knNumber"`
	MobileNumber string `json:"mobileNumber"`
	EmailID      string `json:"emailId"`
}

// Asset describes the pledged gold
type Asset struct {
	ItemType      string   `json:"itemType"`
	NumberOfItems int      `json:"numberOfItems"`
	Purity        string   `json:"purity"`
	NetWeight     float64  `json:"netWeight"`
	QualityIndex  *float64 `json:"qualityIndex"`
}

// Financial holds the disbursement account
type Financial struct {
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IfscCode          string `json:"ifscCode"`
}

// LoanDetails is the full view of a single application
type LoanDetails struct {
	RID             string     `json:"rid"`
	Date            string     `json:"date"`
	Status          LoanStatus `json:"status"`
	Amount          float64    `json:"amount"`
	FinalValue      *float64   `json:"finalValue"`
	RejectionReason *string    `json:"rejectionReason"`
	Applicant       Applicant  `json:"applicant"`
	Asset           Asset      `json:"asset"`
	Financial       Financial  `json:"financial"`
}

// SuggestedOffer is the default final offer proposed to the evaluating employee
func (d *LoanDetails) SuggestedOffer() float64 {
	return d.Amount * SuggestedOfferRate
}

// CustomerProfile is returned by GET /customer/profile
type CustomerProfile struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobileNumber,omitempty"`
	KycStatus    bool    `json:"kycStatus"`
	KycVerified  bool    `json:"kycVerified"`
	KnNumber     *string `json:"knNumber"`
	Aadhaar      *string `json:"aadhaar,omitempty"`
	PanCard      *string `json:"panCard,omitempty"`
}

// KYC display states
const (
	KycVerified   = "verified"
	KycPending    = "pending"
	KycNotApplied = "not-applied"
)

// KycDisplayStatus folds the two backend flags into one display state
func (p *CustomerProfile) KycDisplayStatus() string {
	if p.KycVerified {
		return KycVerified
	}
	if p.KycStatus {
		return KycPending
	}
	return KycNotApplied
}

// EmployeeProfile is returned by GET /customer/employee/profile
type EmployeeProfile struct {
	ID         int64    `json:"id"`
	Username   string   `json:"username"`
	FullName   string   `json:"fullName"`
	Role       FineRole `json:"role"`
	BranchName string   `json:"branchName"`
}

// Profile is the cached profile of a session; exactly one side is set
type Profile struct {
	Customer *CustomerProfile `json:"customer,omitempty"`
	Employee *EmployeeProfile `json:"employee,omitempty"`
}

// CustomerDetails pre-fills the loan application form
type CustomerDetails struct {
	ID                int64  `json:"id"`
	FullName          string `json:"fullName"`
	KnNumber          string `json:"knNumber"`
	Gender            string `json:"gender"`
	MobileNumber      string `json:"mobileNumber"`
	EmailID           string `json:"emailId"`
	KycVerified       bool   `json:"kycVerified"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IfscCode          string `json:"ifscCode"`
	BranchName        string `json:"branchName"`
}

// LoanApplication is the payload of POST /customer/loan-application
type LoanApplication struct {
	CustomerID      int64   `json:"customerId"`
	AmountSeeking   float64 `json:"amountSeeking"`
	ItemType        string  `json:"itemType"`
	NumberOfItems   int     `json:"numberOfItems"`
	Purity          string  `json:"purity"`
	NetWeight       float64 `json:"netWeight"`
	Acknowledgement bool    `json:"acknowledgement"`
}

// SubmitResult is what the customer sees after submitting an application
type SubmitResult struct {
	Message string `json:"message"`
	RID     string `json:"rid"`
}

// GoldRate is one row of GET /bullion/rates
type GoldRate struct {
	Karat       string  `json:"karat"`
	RatePerGram float64 `json:"ratePerGram"`
	Price       string  `json:"price,omitempty"`
}

// KYCRequest is the payload of POST /kyc/verify
type KYCRequest struct {
	FullName          string `json:"fullName"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	MobileNumber      string `json:"mobileNumber"`
	AadhaarNumber     string `json:"aadhaarNumber"`
	PanNumber         string `json:"panNumber"`
	PassportNumber    string `json:"passportNumber,omitempty"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	PinCode           string `json:"pinCode"`
	Occupation        string `json:"occupation"`
	Income            string `json:"income"`
	BankAccountNumber string `json:"bankAccountNumber"`
	IfscCode          string `json:"ifscCode"`
	ExistingLoans     string `json:"existingLoans"`
}

// KYCResult is the response of POST /kyc/verify
type KYCResult struct {
	Message  string `json:"message"`
	KnNumber string `json:"knNumber"`
}

// Registration is the payload of POST /auth/register/customer
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the payload of the password login endpoints
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordReset is the payload of POST /auth/forgot-password/{role}
type PasswordReset struct {
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	NewPassword string `json:"newPassword"`
}

// PasswordChange is the payload of POST /auth/{role}/change-password
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// NewEmployee is the payload of POST /customer/employee/create
type NewEmployee struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	FullName   string   `json:"fullName"`
	Role       FineRole `json:"role"`
	BranchName string   `json:"branchName"`
}
