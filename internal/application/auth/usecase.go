package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/internal/domain"
	"github.com/stockeye/estoque-api/internal/domain/entity"
	"github.com/stockeye/estoque-api/internal/domain/repository"
	"github.com/stockeye/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticação de operadores: cadastro e login. O nome do operador
// autenticado vira o ator das movimentações que ele registrar.
type UseCase struct {
	operatorRepo repository.OperatorRepository
	jwtCfg       JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(operatorRepo repository.OperatorRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{operatorRepo: operatorRepo, jwtCfg: jwtCfg}
}

// Register cria um operador: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o e-mail já estiver cadastrado.
func (uc *UseCase) Register(in dto.RegisterOperatorRequest) (*dto.OperatorResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.operatorRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	op := &entity.Operator{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.operatorRepo.Create(op); err != nil {
		return nil, err
	}
	return toOperatorResponse(op), nil
}

// Login verifica e-mail/senha, gera JWT e devolve token + operador.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	op, err := uc.operatorRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrOperatorNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if op.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, op.ID, op.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Operator: *toOperatorResponse(op)}, nil
}

func toOperatorResponse(op *entity.Operator) *dto.OperatorResponse {
	return &dto.OperatorResponse{
		ID:     op.ID,
		Email:  op.Email,
		Name:   op.Name,
		Status: op.Status,
	}
}
