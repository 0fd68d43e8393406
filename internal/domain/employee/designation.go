package employee

// Designation is the job title catalogue used by the roster.
type Designation string

const (
	DesignationAccountant           Designation = "accountant"
	DesignationAdminGeneral         Designation = "adminGeneral"
	DesignationAttendant            Designation = "attendant"
	DesignationCashier              Designation = "cashier"
	DesignationCivilForeman         Designation = "civilForeman"
	DesignationCivilSupervisor      Designation = "civilSupervisor"
	DesignationCleaner              Designation = "cleaner"
	DesignationCleanerSupervisor    Designation = "cleanerSupervisor"
	DesignationCook                 Designation = "cook"
	DesignationElectrician          Designation = "electrician"
	DesignationElectricalForeman    Designation = "electricalForeman"
	DesignationElectricianSuperv    Designation = "electricianSupervisor"
	DesignationEstimatorTendering   Designation = "estimatorInTendering"
	DesignationFabricator           Designation = "fabricator"
	DesignationForkliftOperator     Designation = "forkliftOperator"
	DesignationGeneralClerk         Designation = "generalClerk"
	DesignationGeneralHelper        Designation = "generalHelper"
	DesignationGeneralSupervisor    Designation = "generalSupervisor"
	DesignationHRLabourDiscipline   Designation = "hrLabourDiscipline"
	DesignationHVACTechnician       Designation = "hvacTechnician"
	DesignationKitchenHelper        Designation = "kitchenHelper"
	DesignationLaborer              Designation = "laborer"
	DesignationLawnkeeper           Designation = "lawnkeeper"
	DesignationLogistics            Designation = "logistics"
	DesignationMaleNurse            Designation = "maleNurse"
	DesignationMatron               Designation = "matron"
	DesignationMechanic             Designation = "mechanic"
	DesignationMechanicalForeman    Designation = "mechanicalForeman"
	DesignationMechanicalSupervisor Designation = "mechanicalSupervisor"
	DesignationOther                Designation = "other"
	DesignationPainter              Designation = "painter"
	DesignationPainterSupervisor    Designation = "painterSupervisor"
	DesignationPlumber              Designation = "plumber"
	DesignationPlumberHelper        Designation = "plumberHelper"
	DesignationPMOGeneralManager    Designation = "pmoGeneral_manager"
	DesignationPMOOperationsDir     Designation = "pmoOperations_director"
	DesignationProcurementSpec      Designation = "procurementProcurementSpecialist"
	DesignationPMKuwait             Designation = "projectManagerKuwait"
	DesignationPMSuperintendent     Designation = "projectManagerSuperIntendent"
	DesignationProjectTechManager   Designation = "projectTechnical_manager"
	DesignationSeniorEngTendering   Designation = "seniorEngineerTendering"
	DesignationSiteExpeditor        Designation = "siteExpeditor"
	DesignationSiteTimekeeper       Designation = "siteTimekeeper"
	DesignationSiteTimekeeperClerk  Designation = "siteTimekeeperClerk"
	DesignationStorekeeper          Designation = "storekeeper"
	DesignationTherapist            Designation = "therapist"
	DesignationWaiter               Designation = "waiter"
)

// designationLabels maps catalogue values to human-readable titles.
var designationLabels = map[Designation]string{
	DesignationAccountant:           "Accountant",
	DesignationAdminGeneral:         "Admin General",
	DesignationAttendant:            "Attendant",
	DesignationCashier:              "Cashier",
	DesignationCivilForeman:         "Civil Foreman",
	DesignationCivilSupervisor:      "Civil Supervisor",
	DesignationCleaner:              "Cleaner",
	DesignationCleanerSupervisor:    "Cleaner Supervisor",
	DesignationCook:                 "Cook",
	DesignationElectrician:          "Electrician",
	DesignationElectricalForeman:    "Electrical Foreman",
	DesignationElectricianSuperv:    "Electrician Supervisor",
	DesignationEstimatorTendering:   "Estimator in Tendering",
	DesignationFabricator:           "Fabricator",
	DesignationForkliftOperator:     "Forklift Operator",
	DesignationGeneralClerk:         "General Clerk",
	DesignationGeneralHelper:        "General Helper",
	DesignationGeneralSupervisor:    "General Supervisor",
	DesignationHRLabourDiscipline:   "HR Labour Discipline",
	DesignationHVACTechnician:       "HVAC Technician",
	DesignationKitchenHelper:        "Kitchen Helper",
	DesignationLaborer:              "Laborer",
	DesignationLawnkeeper:           "Lawnkeeper",
	DesignationLogistics:            "Logistics",
	DesignationMaleNurse:            "Male Nurse",
	DesignationMatron:               "Matron",
	DesignationMechanic:             "Mechanic",
	DesignationMechanicalForeman:    "Mechanical Foreman",
	DesignationMechanicalSupervisor: "Mechanical Supervisor",
	DesignationOther:                "Other",
	DesignationPainter:              "Painter",
	DesignationPainterSupervisor:    "Painter Supervisor",
	DesignationPlumber:              "Plumber",
	DesignationPlumberHelper:        "Plumber Helper",
	DesignationPMOGeneralManager:    "PMO General Manager",
	DesignationPMOOperationsDir:     "PMO Operations Director",
	DesignationProcurementSpec:      "Procurement Specialist",
	DesignationPMKuwait:             "Project Manager Kuwait",
	DesignationPMSuperintendent:     "Project Manager Superintendent",
	DesignationProjectTechManager:   "Project Technical Manager",
	DesignationSeniorEngTendering:   "Senior Engineer Tendering",
	DesignationSiteExpeditor:        "Site Expeditor",
	DesignationSiteTimekeeper:       "Site Timekeeper",
	DesignationSiteTimekeeperClerk:  "Site Timekeeper Clerk",
	DesignationStorekeeper:          "Storekeeper",
	DesignationTherapist:            "Therapist",
	DesignationWaiter:               "Waiter",
}

func (d Designation) Valid() bool {
	_, ok := designationLabels[d]
	return ok
}

// Label returns the human-readable title, or "Unknown" for values outside
// the catalogue.
func (d Designation) Label() string {
	if label, ok := designationLabels[d]; ok {
		return label
	}
	return "Unknown"
}
