//go:generate go run go.uber.org/mock/mockgen -source=household.go -destination=../mocks/mock_household_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"household-intranet/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IHouseholdRepository interface {
	GetHousehold(id uuid.UUID) (*domain.Household, error)
	InsertHousehold(household *domain.Household) (*domain.Household, error)
	UpdateHousehold(household *domain.Household) (*domain.Household, error)
	GetHouseholdMember(id uuid.UUID) (*domain.HouseholdMember, error)
	// HouseholdMemberGetByMailAddress returns nil without error when no member uses the address.
	HouseholdMemberGetByMailAddress(mailAddress string) (*domain.HouseholdMember, error)
	InsertHouseholdMember(member *domain.HouseholdMember) (*domain.HouseholdMember, error)
	UpdateHouseholdMember(member *domain.HouseholdMember) (*domain.HouseholdMember, error)
}

type HouseholdRepository struct {
	store
}

func NewHouseholdRepository(db *badger.DB, log *slog.Logger) IHouseholdRepository {
	return &HouseholdRepository{store{db: db, log: log}}
}

type diskHousehold struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CreationTime time.Time   `json:"creation_time"`
	Members      []uuid.UUID `json:"members"`
}

type diskHouseholdMember struct {
	ID                        uuid.UUID         `json:"id"`
	MailAddress               string            `json:"mail_address"`
	Membership                domain.Membership `json:"membership"`
	MembershipExpireTime      *time.Time        `json:"membership_expire_time,omitempty"`
	ActivationCode            string            `json:"activation_code"`
	ActivationTime            *time.Time        `json:"activation_time,omitempty"`
	PrivacyPolicyAcceptedTime *time.Time        `json:"privacy_policy_accepted_time,omitempty"`
	CreationTime              time.Time         `json:"creation_time"`
	Households                []uuid.UUID       `json:"households"`
}

func householdKey(id uuid.UUID) string { return "household:" + id.String() }

func memberKey(id uuid.UUID) string { return "member:" + id.String() }

func memberMailKey(mail string) string {
	return "idx:member-mail:" + strings.ToLower(strings.TrimSpace(mail))
}

func (r *HouseholdRepository) GetHousehold(id uuid.UUID) (*domain.Household, error) {
	var dh diskHousehold
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, householdKey(id), &dh)
	})
	if err != nil {
		return nil, translate(err, "household", id, "reading household")
	}
	return toHousehold(dh), nil
}

// InsertHousehold assigns an identifier and links the listed members back to the household.
func (r *HouseholdRepository) InsertHousehold(household *domain.Household) (*domain.Household, error) {
	dh := fromHousehold(household)
	if dh.ID == uuid.Nil {
		dh.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := set(txn, householdKey(dh.ID), dh); err != nil {
			return err
		}
		return reconcileMembers(txn, dh.ID, nil, dh.Members)
	})
	if err != nil {
		return nil, translate(err, "household", dh.ID, "inserting household")
	}
	r.log.Debug("Household inserted", "id", dh.ID)
	return toHousehold(dh), nil
}

// UpdateHousehold stores the household and keeps each member's household list
// in step with the household's member list.
func (r *HouseholdRepository) UpdateHousehold(household *domain.Household) (*domain.Household, error) {
	dh := fromHousehold(household)
	err := r.db.Update(func(txn *badger.Txn) error {
		var previous diskHousehold
		if err := get(txn, householdKey(dh.ID), &previous); err != nil {
			return err
		}
		if err := set(txn, householdKey(dh.ID), dh); err != nil {
			return err
		}
		return reconcileMembers(txn, dh.ID, previous.Members, dh.Members)
	})
	if err != nil {
		return nil, translate(err, "household", dh.ID, "updating household")
	}
	r.log.Debug("Household updated", "id", dh.ID, "members", len(dh.Members))
	return toHousehold(dh), nil
}

func reconcileMembers(txn *badger.Txn, householdID uuid.UUID, before, after []uuid.UUID) error {
	added, removed := lo.Difference(after, before)
	for _, id := range added {
		if err := updateMemberHouseholds(txn, id, func(h []uuid.UUID) []uuid.UUID {
			return lo.Uniq(append(h, householdID))
		}); err != nil {
			return err
		}
	}
	for _, id := range removed {
		if err := updateMemberHouseholds(txn, id, func(h []uuid.UUID) []uuid.UUID {
			return lo.Without(h, householdID)
		}); err != nil {
			return err
		}
	}
	return nil
}

func updateMemberHouseholds(txn *badger.Txn, memberID uuid.UUID, change func([]uuid.UUID) []uuid.UUID) error {
	var dm diskHouseholdMember
	if err := get(txn, memberKey(memberID), &dm); err != nil {
		return translate(err, "household member", memberID, "reading household member")
	}
	dm.Households = change(dm.Households)
	return set(txn, memberKey(memberID), dm)
}

func (r *HouseholdRepository) GetHouseholdMember(id uuid.UUID) (*domain.HouseholdMember, error) {
	var dm diskHouseholdMember
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, memberKey(id), &dm)
	})
	if err != nil {
		return nil, translate(err, "household member", id, "reading household member")
	}
	return toHouseholdMember(dm), nil
}

func (r *HouseholdRepository) HouseholdMemberGetByMailAddress(mailAddress string) (*domain.HouseholdMember, error) {
	var dm diskHouseholdMember
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		var id uuid.UUID
		if err := get(txn, memberMailKey(mailAddress), &id); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return get(txn, memberKey(id), &dm)
	})
	if err != nil {
		return nil, translate(err, "household member", mailAddress, "reading household member by mail address")
	}
	if !found {
		return nil, nil
	}
	return toHouseholdMember(dm), nil
}

func (r *HouseholdRepository) InsertHouseholdMember(member *domain.HouseholdMember) (*domain.HouseholdMember, error) {
	dm := fromHouseholdMember(member)
	if dm.ID == uuid.Nil {
		dm.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		taken, err := exists(txn, memberMailKey(dm.MailAddress))
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("mail address %s is already in use", dm.MailAddress)
		}
		if err = set(txn, memberKey(dm.ID), dm); err != nil {
			return err
		}
		return set(txn, memberMailKey(dm.MailAddress), dm.ID)
	})
	if err != nil {
		return nil, translate(err, "household member", dm.ID, "inserting household member")
	}
	r.log.Debug("Household member inserted", "id", dm.ID)
	return toHouseholdMember(dm), nil
}

func (r *HouseholdRepository) UpdateHouseholdMember(member *domain.HouseholdMember) (*domain.HouseholdMember, error) {
	dm := fromHouseholdMember(member)
	err := r.db.Update(func(txn *badger.Txn) error {
		var previous diskHouseholdMember
		if err := get(txn, memberKey(dm.ID), &previous); err != nil {
			return err
		}
		if !strings.EqualFold(previous.MailAddress, dm.MailAddress) {
			if err := txn.Delete([]byte(memberMailKey(previous.MailAddress))); err != nil {
				return err
			}
			if err := set(txn, memberMailKey(dm.MailAddress), dm.ID); err != nil {
				return err
			}
		}
		return set(txn, memberKey(dm.ID), dm)
	})
	if err != nil {
		return nil, translate(err, "household member", dm.ID, "updating household member")
	}
	r.log.Debug("Household member updated", "id", dm.ID)
	return toHouseholdMember(dm), nil
}

func fromHousehold(h *domain.Household) diskHousehold {
	return diskHousehold{
		ID:           h.ID,
		Name:         h.Name,
		Description:  h.Description,
		CreationTime: h.CreationTime,
		Members:      lo.Uniq(h.Members),
	}
}

func toHousehold(dh diskHousehold) *domain.Household {
	return &domain.Household{
		ID:           dh.ID,
		Name:         dh.Name,
		Description:  dh.Description,
		CreationTime: dh.CreationTime.UTC(),
		Members:      dh.Members,
	}
}

func fromHouseholdMember(m *domain.HouseholdMember) diskHouseholdMember {
	return diskHouseholdMember{
		ID:                        m.ID,
		MailAddress:               m.MailAddress,
		Membership:                m.Membership,
		MembershipExpireTime:      m.MembershipExpireTime,
		ActivationCode:            m.ActivationCode,
		ActivationTime:            m.ActivationTime,
		PrivacyPolicyAcceptedTime: m.PrivacyPolicyAcceptedTime,
		CreationTime:              m.CreationTime,
		Households:                lo.Uniq(m.Households),
	}
}

func toHouseholdMember(dm diskHouseholdMember) *domain.HouseholdMember {
	return &domain.HouseholdMember{
		ID:                        dm.ID,
		MailAddress:               dm.MailAddress,
		Membership:                dm.Membership,
		MembershipExpireTime:      dm.MembershipExpireTime,
		ActivationCode:            dm.ActivationCode,
		ActivationTime:            dm.ActivationTime,
		PrivacyPolicyAcceptedTime: dm.PrivacyPolicyAcceptedTime,
		CreationTime:              dm.CreationTime.UTC(),
		Households:                dm.Households,
	}
}
