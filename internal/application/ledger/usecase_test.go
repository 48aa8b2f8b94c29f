package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davortega/bodega-equipos/internal/application/ledger"
	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. El fakeTxRunner clona el estado antes
// de ejecutar fn y solo publica el clon si fn no retorna error: así los tests
// verifican de verdad el contrato "todo o nada" del coordinador.
type memStore struct {
	equipment map[string]*entity.Equipment
	loans     map[string]*entity.LoanRecord
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		equipment: make(map[string]*entity.Equipment),
		loans:     make(map[string]*entity.LoanRecord),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, e := range s.equipment {
		cp := *e
		c.equipment[id] = &cp
	}
	for id, l := range s.loans {
		cp := *l
		c.loans[id] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	return c
}

type fakeEquipmentRepo struct{ s *memStore }

func (r *fakeEquipmentRepo) Create(e *entity.Equipment) error {
	cp := *e
	r.s.equipment[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.s.equipment[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) GetForUpdate(id string) (*entity.Equipment, error) {
	return r.GetByID(id)
}

func (r *fakeEquipmentRepo) Update(e *entity.Equipment) error {
	cp := *e
	r.s.equipment[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) UpdateQuantities(e *entity.Equipment) error {
	return r.Update(e)
}

func (r *fakeEquipmentRepo) List(_ repository.EquipmentFilter, _, _ int) ([]*entity.Equipment, error) {
	return nil, nil
}

func (r *fakeEquipmentRepo) Delete(id string) error {
	delete(r.s.equipment, id)
	return nil
}

type fakeLoanRepo struct{ s *memStore }

func (r *fakeLoanRepo) Create(l *entity.LoanRecord) error {
	cp := *l
	r.s.loans[l.ID] = &cp
	return nil
}

func (r *fakeLoanRepo) GetByID(id string) (*entity.LoanRecord, error) {
	l, ok := r.s.loans[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLoanRepo) GetForUpdate(id string) (*entity.LoanRecord, error) {
	return r.GetByID(id)
}

func (r *fakeLoanRepo) Update(l *entity.LoanRecord) error {
	cp := *l
	r.s.loans[l.ID] = &cp
	return nil
}

func (r *fakeLoanRepo) List(_ repository.LoanRecordFilter, _, _ int) ([]*entity.LoanRecord, error) {
	return nil, nil
}

func (r *fakeLoanRepo) CountOpenByEquipment(equipmentID string) (int, error) {
	n := 0
	for _, l := range r.s.loans {
		if l.EquipmentID == equipmentID && l.Open() {
			n++
		}
	}
	return n, nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ string) (*entity.Movement, error) { return nil, nil }

func (r *fakeMovementRepo) List(_ repository.MovementFilter, _, _ int) ([]*entity.Movement, error) {
	return append([]*entity.Movement(nil), r.s.movements...), nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	equipmentRepo repository.EquipmentRepository,
	loanRepo repository.LoanRecordRepository,
	movementRepo repository.MovementRepository,
) error) error {
	work := t.s.clone()
	err := fn(&fakeEquipmentRepo{s: work}, &fakeLoanRepo{s: work}, &fakeMovementRepo{s: work})
	if err != nil {
		return err // rollback: el clon se descarta
	}
	*t.s = *work // commit: todo visible a la vez
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	equipoID   = "eq-001"
	custodioID = "cus-001"
	usuarioID  = "usr-001"
	sucursalID = "suc-001"
)

func setup(servible, caducado, prestado int) (*ledger.StockLedgerUseCase, *memStore) {
	store := newMemStore()
	store.equipment[equipoID] = &entity.Equipment{
		ID:               equipoID,
		Tipo:             "Equipo de Protección Balístico",
		Description:      "Chaleco antibalas nivel III-A",
		Unit:             entity.UnitEA,
		MaterialServible: servible,
		MaterialCaducado: caducado,
		MaterialPrestado: prestado,
		CustodianID:      custodioID,
		BranchID:         sucursalID,
	}
	return ledger.NewStockLedgerUseCase(&fakeTxRunner{s: store}), store
}

func outcomeInput(cantidad int) ledger.OutcomeInput {
	return ledger.OutcomeInput{
		EquipmentID:     equipoID,
		Cantidad:        cantidad,
		ResponsibleName: "Sgto. Pérez",
		ResponsibleArea: "Unidad Antimotines",
		CustodianID:     custodioID,
		PerformedByID:   usuarioID,
		BranchID:        sucursalID,
	}
}

func requireInvariants(t *testing.T, e *entity.Equipment) {
	t.Helper()
	require.GreaterOrEqual(t, e.MaterialServible, 0, "servible nunca negativo")
	require.GreaterOrEqual(t, e.MaterialCaducado, 0, "caducado nunca negativo")
	require.GreaterOrEqual(t, e.MaterialPrestado, 0, "prestado nunca negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterOutcome
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: 10/2/0, egreso de 3 → 7/2/3, un préstamo abierto y un movimiento Egreso.
func TestRegisterOutcome_EscenarioA(t *testing.T) {
	uc, store := setup(10, 2, 0)
	totalAntes := store.equipment[equipoID].Total()

	eq, loan, err := uc.RegisterOutcome(context.Background(), outcomeInput(3))
	require.NoError(t, err)

	assert.Equal(t, 7, eq.MaterialServible)
	assert.Equal(t, 2, eq.MaterialCaducado)
	assert.Equal(t, 3, eq.MaterialPrestado)
	requireInvariants(t, eq)

	// El egreso solo mueve cantidad entre contadores: el total se conserva
	assert.Equal(t, totalAntes, eq.Total(), "el total no cambia con un egreso")
	assert.Equal(t, 9, eq.TotalEnBodega())

	require.NotNil(t, loan)
	assert.Equal(t, entity.LoanStatusPrestado, loan.Status)
	assert.Equal(t, 3, loan.Cantidad)
	assert.Equal(t, custodioID, loan.CustodianID)
	assert.Nil(t, loan.ReturnDate)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeEgreso, mov.Type)
	assert.Equal(t, 3, mov.Quantity)
	assert.Contains(t, mov.Reason, "Sgto. Pérez")

	// El préstamo y su movimiento quedan correlacionados por TransactionID
	assert.NotEmpty(t, loan.TransactionID)
	assert.Equal(t, loan.TransactionID, mov.TransactionID)
}

// Escenario C: sin stock servible el egreso falla y no deja ninguna escritura.
func TestRegisterOutcome_StockInsuficiente(t *testing.T) {
	uc, store := setup(0, 5, 0)

	_, _, err := uc.RegisterOutcome(context.Background(), outcomeInput(1))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	eq := store.equipment[equipoID]
	assert.Equal(t, 0, eq.MaterialServible)
	assert.Equal(t, 5, eq.MaterialCaducado)
	assert.Equal(t, 0, eq.MaterialPrestado)
	assert.Empty(t, store.loans, "no debe crearse préstamo")
	assert.Empty(t, store.movements, "no debe crearse movimiento")
}

func TestRegisterOutcome_Validaciones(t *testing.T) {
	uc, store := setup(10, 0, 0)

	cases := map[string]ledger.OutcomeInput{
		"cantidad cero":     {EquipmentID: equipoID, Cantidad: 0, ResponsibleName: "X", CustodianID: custodioID},
		"cantidad negativa": {EquipmentID: equipoID, Cantidad: -2, ResponsibleName: "X", CustodianID: custodioID},
		"sin responsable":   {EquipmentID: equipoID, Cantidad: 1, CustodianID: custodioID},
		"sin custodio":      {EquipmentID: equipoID, Cantidad: 1, ResponsibleName: "X"},
	}
	for name, in := range cases {
		_, _, err := uc.RegisterOutcome(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
	assert.Empty(t, store.movements)
}

func TestRegisterOutcome_EquipoInexistente(t *testing.T) {
	uc, _ := setup(10, 0, 0)
	in := outcomeInput(1)
	in.EquipmentID = "no-existe"

	_, _, err := uc.RegisterOutcome(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterReturn
// ──────────────────────────────────────────────────────────────────────────────

// Escenario B: tras el egreso del escenario A, la devolución restaura 10/2/0,
// cierra el préstamo y deja un nuevo movimiento de Ingreso.
func TestRegisterReturn_EscenarioB(t *testing.T) {
	uc, store := setup(10, 2, 0)
	totalInicial := store.equipment[equipoID].Total()

	_, loan, err := uc.RegisterOutcome(context.Background(), outcomeInput(3))
	require.NoError(t, err)

	eq, closed, err := uc.RegisterReturn(context.Background(), ledger.ReturnInput{
		LoanRecordID:  loan.ID,
		PerformedByID: usuarioID,
		BranchID:      sucursalID,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, eq.MaterialServible)
	assert.Equal(t, 2, eq.MaterialCaducado)
	assert.Equal(t, 0, eq.MaterialPrestado)
	requireInvariants(t, eq)
	assert.Equal(t, totalInicial, eq.Total(), "ida y vuelta conserva el total")

	assert.Equal(t, entity.LoanStatusDevuelto, closed.Status)
	require.NotNil(t, closed.ReturnDate)

	require.Len(t, store.movements, 2)
	devolucion := store.movements[1]
	assert.Equal(t, entity.MovementTypeIngreso, devolucion.Type)
	assert.Equal(t, 3, devolucion.Quantity)
	// Atribución: el movimiento de devolución se atribuye al custodio del préstamo
	// y el usuario que registra queda como PerformedBy.
	assert.Equal(t, custodioID, devolucion.ResponsibleID)
	assert.Equal(t, usuarioID, devolucion.PerformedByID)
	assert.Contains(t, devolucion.Reason, "Devolución de Sgto. Pérez")
}

// La devolución no es idempotente: la segunda llamada reporta ErrLoanAlreadyReturned
// y deja el estado exactamente igual.
func TestRegisterReturn_DobleDevolucion(t *testing.T) {
	uc, store := setup(10, 2, 0)

	_, loan, err := uc.RegisterOutcome(context.Background(), outcomeInput(3))
	require.NoError(t, err)

	in := ledger.ReturnInput{LoanRecordID: loan.ID, PerformedByID: usuarioID, BranchID: sucursalID}
	_, _, err = uc.RegisterReturn(context.Background(), in)
	require.NoError(t, err)

	movimientosAntes := len(store.movements)
	eqAntes := *store.equipment[equipoID]

	_, _, err = uc.RegisterReturn(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrLoanAlreadyReturned)

	assert.Equal(t, eqAntes, *store.equipment[equipoID], "el estado no cambia en la segunda devolución")
	assert.Len(t, store.movements, movimientosAntes, "no se agrega movimiento")
}

func TestRegisterReturn_PrestamoInexistente(t *testing.T) {
	uc, _ := setup(10, 0, 0)

	_, _, err := uc.RegisterReturn(context.Background(), ledger.ReturnInput{
		LoanRecordID:  "no-existe",
		PerformedByID: usuarioID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Guardia contra corrupción: si prestado quedaría negativo, la operación completa
// se aborta sin escrituras parciales.
func TestRegisterReturn_PrestadoNegativoAborta(t *testing.T) {
	uc, store := setup(10, 2, 0)

	_, loan, err := uc.RegisterOutcome(context.Background(), outcomeInput(3))
	require.NoError(t, err)

	// Corrupción simulada: alguien dejó prestado por debajo de la cantidad del préstamo
	store.equipment[equipoID].MaterialPrestado = 1
	eqAntes := *store.equipment[equipoID]
	loanAntes := *store.loans[loan.ID]
	movimientosAntes := len(store.movements)

	_, _, err = uc.RegisterReturn(context.Background(), ledger.ReturnInput{
		LoanRecordID:  loan.ID,
		PerformedByID: usuarioID,
		BranchID:      sucursalID,
	})
	require.ErrorIs(t, err, domain.ErrTxAborted)

	assert.Equal(t, eqAntes, *store.equipment[equipoID], "rollback de contadores")
	assert.Equal(t, loanAntes, *store.loans[loan.ID], "el préstamo sigue abierto")
	assert.Len(t, store.movements, movimientosAntes)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterIncome
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: ingreso de 5 caducado sobre 0/0 → caducado=5, un movimiento de
// Ingreso y el total sube en 5 (el ingreso es la única operación que cambia el total).
func TestRegisterIncome_EscenarioD(t *testing.T) {
	uc, store := setup(0, 0, 0)
	totalAntes := store.equipment[equipoID].Total()

	eq, err := uc.RegisterIncome(context.Background(), ledger.IncomeInput{
		EquipmentID:   equipoID,
		Cantidad:      5,
		Tipo:          entity.IncomeKindCaducado,
		PerformedByID: usuarioID,
		BranchID:      sucursalID,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, eq.MaterialServible)
	assert.Equal(t, 5, eq.MaterialCaducado)
	assert.Equal(t, totalAntes+5, eq.Total())
	requireInvariants(t, eq)

	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeIngreso, store.movements[0].Type)
	assert.Equal(t, 5, store.movements[0].Quantity)
	assert.Contains(t, store.movements[0].Reason, "caducado")
}

func TestRegisterIncome_ServibleConObservacion(t *testing.T) {
	uc, store := setup(3, 0, 0)

	eq, err := uc.RegisterIncome(context.Background(), ledger.IncomeInput{
		EquipmentID:   equipoID,
		Cantidad:      4,
		Tipo:          entity.IncomeKindServible,
		Observacion:   "Reposición trimestral",
		PerformedByID: usuarioID,
		BranchID:      sucursalID,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, eq.MaterialServible)
	assert.Equal(t, "Reposición trimestral", eq.Observacion)
	assert.Equal(t, "Reposición trimestral", store.equipment[equipoID].Observacion)
}

func TestRegisterIncome_Validaciones(t *testing.T) {
	uc, store := setup(0, 0, 0)

	_, err := uc.RegisterIncome(context.Background(), ledger.IncomeInput{
		EquipmentID: equipoID, Cantidad: 0, Tipo: entity.IncomeKindServible,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.RegisterIncome(context.Background(), ledger.IncomeInput{
		EquipmentID: equipoID, Cantidad: 5, Tipo: "prestado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.RegisterIncome(context.Background(), ledger.IncomeInput{
		EquipmentID: "no-existe", Cantidad: 5, Tipo: entity.IncomeKindServible,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, store.movements, "ninguna validación fallida deja movimiento")
}
