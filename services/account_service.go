package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"campus_backend/apperr"
	"campus_backend/auth"
	"campus_backend/dto"
	"campus_backend/models"
	"campus_backend/repositories"
)

// AccountService handles registration, login and CRUD for one role
// collection; the server runs three instances (admin, faculty, student).
type AccountService struct {
	role   models.Role
	people PersonStore
	seq    SequenceAllocator
	secret []byte
}

func NewAccountService(role models.Role, people PersonStore, seq SequenceAllocator, secret []byte) *AccountService {
	return &AccountService{role: role, people: people, seq: seq, secret: secret}
}

func (s *AccountService) Role() models.Role { return s.role }

func (s *AccountService) Register(ctx context.Context, req dto.RegisterRequest) (models.Person, error) {
	if !isValidEmail(req.Email) {
		return models.Person{}, apperr.ErrInvalidEmail
	}
	if !isValidPhone(req.Phone) {
		return models.Person{}, apperr.ErrInvalidPhone
	}
	if !isStrongPassword(req.Password) {
		return models.Person{}, apperr.ErrWeakPassword
	}
	dob, err := parseDOB(req.DOB)
	if err != nil {
		return models.Person{}, apperr.ErrMissingFields
	}

	existing, err := s.people.FindByEmail(ctx, req.Email)
	if err != nil {
		return models.Person{}, err
	}
	if existing != nil {
		return models.Person{}, apperr.AlreadyRegistered(s.role.String())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Person{}, err
	}
	personID, err := s.seq.NextPublicID(ctx, s.role.Prefix())
	if err != nil {
		return models.Person{}, err
	}

	created, err := s.people.Insert(ctx, models.Person{
		PersonID:  personID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		Password:  string(hashed),
		DOB:       dob,
	})
	if repositories.IsDup(err) {
		return models.Person{}, apperr.AlreadyRegistered(s.role.String())
	}
	if err != nil {
		return models.Person{}, err
	}
	return created, nil
}

// Login verifies credentials and issues a bearer token carrying this role's
// ID claim. Tokens are valid for one year.
func (s *AccountService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	if !isValidEmail(req.Email) {
		return "", apperr.ErrInvalidEmail
	}
	if !isStrongPassword(req.Password) {
		return "", apperr.ErrWeakPassword
	}

	person, err := s.people.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if person == nil || bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(req.Password)) != nil {
		return "", apperr.ErrInvalidCredentials
	}

	user := auth.NewClaimUser(s.role, person.PersonID, person.Email, person.ID.Hex())
	return auth.Sign(s.secret, user, 365*24*time.Hour)
}

func (s *AccountService) Get(ctx context.Context, personID string) (*models.Person, error) {
	person, err := s.people.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperr.AccountNotFound(s.role.String())
	}
	return person, nil
}

func (s *AccountService) List(ctx context.Context) ([]models.Person, error) {
	return s.people.All(ctx)
}

func (s *AccountService) Update(ctx context.Context, personID string, req dto.UpdatePersonRequest) (*models.Person, error) {
	fields := bson.M{}
	if req.FirstName != "" {
		fields["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		fields["lastName"] = req.LastName
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}
	if req.Phone != "" {
		if !isValidPhone(req.Phone) {
			return nil, apperr.ErrInvalidPhone
		}
		fields["phone"] = req.Phone
	}
	if req.DOB != "" {
		dob, err := parseDOB(req.DOB)
		if err != nil {
			return nil, apperr.ErrMissingFields
		}
		fields["dob"] = dob
	}

	person, err := s.people.UpdateByPersonID(ctx, personID, fields)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperr.AccountNotFound(s.role.String())
	}
	return person, nil
}

func (s *AccountService) Delete(ctx context.Context, personID string) error {
	deleted, err := s.people.DeleteByPersonID(ctx, personID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.AccountNotFound(s.role.String())
	}
	return nil
}
