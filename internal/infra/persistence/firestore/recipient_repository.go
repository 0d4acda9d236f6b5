package firestore

import (
	"context"
	"slices"
	"strings"
	"time"

	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/repository"
	"rollcall/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Document field names in the students collection.
const (
	fieldGrade            = "grade"
	fieldClassName        = "className"
	fieldStatus           = "status"
	fieldFCMToken         = "fcmToken"
	fieldNotificationSent = "notificationSent"
	fieldUpdatedAt        = "updatedAt"
)

// studentDocument is the stored shape of a student; the document id is the student code.
type studentDocument struct {
	StudentCode      string    `firestore:"studentCode"`
	StudentName      string    `firestore:"studentName"`
	Grade            string    `firestore:"grade"`
	ClassName        string    `firestore:"className"`
	ParentName       string    `firestore:"parentName"`
	ParentPhone      string    `firestore:"parentPhone"`
	FCMToken         string    `firestore:"fcmToken"`
	Status           string    `firestore:"status"`
	NotificationSent bool      `firestore:"notificationSent"`
	UpdatedAt        time.Time `firestore:"updatedAt,omitempty"`
}

type recipientRepository struct {
	students *firestore.CollectionRef
	client   *firestore.Client
}

// NewRecipientRepository reads and writes students in collection.
func NewRecipientRepository(client *firestore.Client, collection string) repository.RecipientRepository {
	return &recipientRepository{
		students: client.Collection(collection),
		client:   client,
	}
}

// FindRecipients queries by grade and class; eligibility is filtered in memory
// so the collection needs no composite index.
func (repo *recipientRepository) FindRecipients(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error) {
	query := repo.students.Query
	if filter.Grade != "" {
		query = query.Where(fieldGrade, "==", filter.Grade)
	}
	if filter.ClassName != "" {
		query = query.Where(fieldClassName, "==", filter.ClassName)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	recipients := make([]*entity.Recipient, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to query students")
		}

		recipient, err := decodeStudent(snap)
		if err != nil {
			return nil, err
		}
		if filter.Matches(recipient) {
			recipients = append(recipients, recipient)
		}
	}

	sortByCode(recipients)

	return recipients, nil
}

// FindRecipientsByIDs fetches the documents in one round trip; missing ones are skipped.
func (repo *recipientRepository) FindRecipientsByIDs(ctx context.Context, ids []string) ([]*entity.Recipient, error) {
	if len(ids) == 0 {
		return []*entity.Recipient{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.students.Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get students")
	}

	recipients := make([]*entity.Recipient, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		recipient, err := decodeStudent(snap)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, recipient)
	}

	sortByCode(recipients)

	return recipients, nil
}

// FindRecipientByID reads one student document.
func (repo *recipientRepository) FindRecipientByID(ctx context.Context, id string) (*entity.Recipient, error) {
	snap, err := repo.students.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to get student")
	}

	return decodeStudent(snap)
}

// MarkNotified sets notificationSent on the student document.
func (repo *recipientRepository) MarkNotified(ctx context.Context, id string) error {
	return repo.update(ctx, id, []firestore.Update{{Path: fieldNotificationSent, Value: true}})
}

// UpdateAttendance sets the status field; returning to present clears notificationSent.
func (repo *recipientRepository) UpdateAttendance(ctx context.Context, id string, state entity.AttendanceState) (*entity.Recipient, error) {
	updates := []firestore.Update{{Path: fieldStatus, Value: string(state)}}
	if state == entity.AttendancePresent {
		updates = append(updates, firestore.Update{Path: fieldNotificationSent, Value: false})
	}

	if err := repo.update(ctx, id, updates); err != nil {
		return nil, err
	}

	return repo.FindRecipientByID(ctx, id)
}

// UpdateDeviceAddress stores the parent's push token on the student document.
func (repo *recipientRepository) UpdateDeviceAddress(ctx context.Context, id, address string) error {
	return repo.update(ctx, id, []firestore.Update{{Path: fieldFCMToken, Value: address}})
}

func (repo *recipientRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp})

	if _, err := repo.students.Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrRecipientNotFound
		}

		return errors.Wrapf(err, "failed to update student %s", id)
	}

	return nil
}

func decodeStudent(snap *firestore.DocumentSnapshot) (*entity.Recipient, error) {
	var doc studentDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode student %s", snap.Ref.ID)
	}

	return toRecipientDomain(snap.Ref.ID, &doc), nil
}

func toRecipientDomain(docID string, doc *studentDocument) *entity.Recipient {
	// Lookups go through Doc(id), so the document id wins over the stored field.
	code := docID
	if code == "" {
		code = doc.StudentCode
	}

	state, err := entity.ParseAttendanceState(doc.Status)
	if err != nil {
		state = entity.AttendancePresent
	}

	return &entity.Recipient{
		ID:                   code,
		DisplayName:          doc.StudentName,
		Grade:                doc.Grade,
		ClassName:            doc.ClassName,
		ParentName:           doc.ParentName,
		ParentPhone:          doc.ParentPhone,
		AttendanceState:      state,
		DeviceAddress:        doc.FCMToken,
		AlreadyNotifiedToday: doc.NotificationSent,
		UpdatedAt:            doc.UpdatedAt,
	}
}

func sortByCode(recipients []*entity.Recipient) {
	slices.SortFunc(recipients, func(a, b *entity.Recipient) int {
		return strings.Compare(a.ID, b.ID)
	})
}
