package service

import (
	"errors"

	"camping-rental-admin/internal/domain"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/registry"
)

type memberService struct {
	members *registry.MemberRegistry
}

func NewMemberService(members *registry.MemberRegistry) MemberService {
	return &memberService{members: members}
}

// Add registers a member under a freshly reserved unique ID and persists the
// collection.
func (s *memberService) Add(firstName, lastName string, level domain.Tier) (*domain.Member, error) {
	id, err := s.members.UniqueID()
	if err != nil {
		return nil, err
	}

	member := domain.Member{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Level:     level,
	}

	if err := s.members.Add(member); err != nil {
		logger.WithService("members").Error("Failed to persist new member", "member_id", id, "error", err)
	}

	logger.WithService("members").Info("Member added", "member_id", id, "name", member.FullName(), "level", level)
	return &member, nil
}

func (s *memberService) Update(member domain.Member) error {
	if err := s.members.Update(member); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func (s *memberService) Remove(memberID int) error {
	if err := s.members.Remove(memberID); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	logger.WithService("members").Info("Member removed", "member_id", memberID)
	return nil
}

// AppendHistory adds a free-text entry to the member's history and persists.
func (s *memberService) AppendHistory(memberID int, entry string) error {
	member := s.members.FindByID(memberID)
	if member == nil {
		return ErrMemberNotFound
	}
	member.AddHistory(entry)
	return s.members.Update(*member)
}

func (s *memberService) List() []domain.Member {
	return s.members.All()
}

func (s *memberService) Find(memberID int) (*domain.Member, error) {
	member := s.members.FindByID(memberID)
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
