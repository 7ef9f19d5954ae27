package rentalapi

const carFields = `
	id
	name
	type
	description
	year
	quantity
	manufacturerId
	numberOfSeats
	fuelType
	transmissionType
	primaryImageUrl
	secondaryImagesUrls
	manufacturer {
		id
		name
		country
	}`

const rentableFields = `
	id
	carId
	pricePerDay
	availableQuantity
	car {` + carFields + `
	}`

const bookingFields = `
	id
	carId
	userId
	pickUpDate
	pickUpTime
	dropOffDate
	dropOffTime
	pickUpLocation
	dropOffLocation
	address
	phoneNumber
	totalPrice
	status
	createdAt
	updatedAt`

const userFields = `
	id
	firstName
	lastName
	phoneNumber
	email
	city
	state
	country
	pincode
	profileImage`

const qRentableCars = `query GetRentableCars {
	getRentableCars {` + rentableFields + `
	}
}`

const qRentableCar = `query GetRentableCarWithId($id: ID!) {
	getRentableCarsWithId(id: $id) {` + rentableFields + `
	}
}`

const qAvailableCars = `query GetAvailableCars(
	$pickUpDate: String!
	$dropOffDate: String!
	$query: String
	$transmissionType: [String]
	$fuelType: [String]
	$numberOfSeats: [Int]
	$priceSort: String
	$maxPrice: Float
) {
	getAvailableCars(
		pickUpDate: $pickUpDate
		dropOffDate: $dropOffDate
		query: $query
		transmissionType: $transmissionType
		fuelType: $fuelType
		numberOfSeats: $numberOfSeats
		priceSort: $priceSort
		maxPrice: $maxPrice
	) {
		status
		message
		data {` + rentableFields + `
		}
	}
}`

const qFetchBookings = `query FetchBookings {
	fetchBookings {
		status
		message
		data {` + bookingFields + `
			rentable {` + rentableFields + `
			}
		}
	}
}`

const mGeneratePaymentOrder = `mutation GeneratePaymentOrder($totalPrice: Float!, $bookingInput: GenerateBookingInput!) {
	generatePaymentOrder(totalPrice: $totalPrice, bookingInput: $bookingInput) {
		status
		message
		razorpayOrderId
		amount
		currency
	}
}`

const mVerifyPayment = `mutation VerifyPaymentAndCreateBooking($paymentDetails: PaymentInput!, $bookingInput: GenerateBookingInput!) {
	verifyPaymentAndCreateBooking(paymentDetails: $paymentDetails, bookingInput: $bookingInput) {
		status
		message
		data {` + bookingFields + `
		}
	}
}`

const qFetchUser = `query FetchUser {
	fetchUser {
		status
		message
		data {` + userFields + `
		}
	}
}`

const mRegisterUser = `mutation RegisterUser($input: RegistrationInput!) {
	registerUser(input: $input) {
		status
		message
		data {` + userFields + `
		}
	}
}`

const mLogin = `mutation LoginUser($email: String!, $password: String!) {
	userLogin(email: $email, password: $password) {
		status
		message
		token
		data {` + userFields + `
		}
	}
}`

const mSendOTP = `mutation SendOTP($phoneNumber: String!) {
	sendOTP(phoneNumber: $phoneNumber) {
		status
		message
	}
}`

const mVerifyOTP = `mutation VerifyOTP($phoneNumber: String!, $otp: String!) {
	verifyOTP(phoneNumber: $phoneNumber, otp: $otp) {
		status
		message
		token
		data {` + userFields + `
		}
	}
}`

const mUpdateProfile = `mutation UpdateUserProfile($userId: ID!, $input: UpdateProfileInput!) {
	updateUserProfile(userId: $userId, input: $input) {
		status
		message
		data {` + userFields + `
		}
	}
}`

const mUpdatePassword = `mutation UpdatePassword($userId: ID!, $input: UpdatePasswordInput!) {
	updatePassword(userId: $userId, input: $input) {
		status
		message
	}
}`

const mUpdateProfileImage = `mutation UpdateProfileImage($userId: ID!, $profileImage: Upload) {
	updateProfileImage(userId: $userId, profileImage: $profileImage) {
		status
		message
		data {
			profileImage
		}
	}
}`
