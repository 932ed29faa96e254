package seeding

import "bloodbank/models"

// sampleDonors covers each canonical blood group exactly once.
var sampleDonors = []models.Donor{
	{DonorID: "DON10001", Name: "Michael Johnson", DateOfBirth: "1990-05-15", Age: 33, Gender: "Male", BloodGroup: "O+", City: "New York", Phone: "555-0101", Email: "michael@email.com", MedicalDetails: "No medical issues", Eligible: true, LastDonationDate: "2023-10-15"},
	{DonorID: "DON10002", Name: "Sarah Williams", DateOfBirth: "1985-08-22", Age: 38, Gender: "Female", BloodGroup: "A-", City: "Los Angeles", Phone: "555-0102", Email: "sarah@email.com", MedicalDetails: "Allergic to penicillin", Eligible: true, LastDonationDate: "2023-09-20"},
	{DonorID: "DON10003", Name: "David Brown", DateOfBirth: "1995-02-10", Age: 28, Gender: "Male", BloodGroup: "B+", City: "Chicago", Phone: "555-0103", Email: "david@email.com", MedicalDetails: "Asthma controlled", Eligible: true, LastDonationDate: "2023-11-05"},
	{DonorID: "DON10004", Name: "Lisa Taylor", DateOfBirth: "1988-11-30", Age: 35, Gender: "Female", BloodGroup: "AB-", City: "Houston", Phone: "555-0104", Email: "lisa@email.com", MedicalDetails: "No issues", Eligible: true, LastDonationDate: "2023-08-10"},
	{DonorID: "DON10005", Name: "James Wilson", DateOfBirth: "1992-07-18", Age: 31, Gender: "Male", BloodGroup: "O-", City: "Phoenix", Phone: "555-0105", Email: "james@email.com", MedicalDetails: "Universal donor", Eligible: true, LastDonationDate: "2023-12-01"},
	{DonorID: "DON10006", Name: "Maria Garcia", DateOfBirth: "1998-04-25", Age: 25, Gender: "Female", BloodGroup: "A+", City: "Philadelphia", Phone: "555-0106", Email: "maria@email.com", MedicalDetails: "No medical issues", Eligible: true},
	{DonorID: "DON10007", Name: "Robert Miller", DateOfBirth: "1975-12-05", Age: 48, Gender: "Male", BloodGroup: "B-", City: "San Antonio", Phone: "555-0107", Email: "robert@email.com", MedicalDetails: "High blood pressure controlled", Eligible: true, LastDonationDate: "2023-07-22"},
	{DonorID: "DON10008", Name: "Jennifer Davis", DateOfBirth: "1982-09-14", Age: 41, Gender: "Female", BloodGroup: "AB+", City: "San Diego", Phone: "555-0108", Email: "jennifer@email.com", MedicalDetails: "No issues", Eligible: true, LastDonationDate: "2023-11-15"},
}

// SampleDonors returns a copy of the fixed donor list.
func SampleDonors() []models.Donor {
	out := make([]models.Donor, len(sampleDonors))
	copy(out, sampleDonors)
	return out
}

type sampleUser struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// defaultUsers are the demo logins documented for the downstream app.
var defaultUsers = []sampleUser{
	{Email: "admin@bloodbank.com", Password: "admin123", Name: "System Administrator", Role: models.RoleAdmin},
	{Email: "staff@bloodbank.com", Password: "staff123", Name: "John Doe", Role: models.RoleStaff},
}
