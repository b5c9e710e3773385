package data

// Job — rAthena job (class) ID.
type Job int32

// Job IDs (rAthena numbering).
const (
	JobNovice     Job = 0
	JobSwordman   Job = 1
	JobMage       Job = 2
	JobArcher     Job = 3
	JobAcolyte    Job = 4
	JobMerchant   Job = 5
	JobThief      Job = 6
	JobKnight     Job = 7
	JobPriest     Job = 8
	JobWizard     Job = 9
	JobBlacksmith Job = 10
	JobHunter     Job = 11
	JobAssassin   Job = 12
	JobCrusader   Job = 14
	JobMonk       Job = 15
	JobSage       Job = 16
	JobRogue      Job = 17
	JobAlchemist  Job = 18
	JobBard       Job = 19
	JobDancer     Job = 20
	JobGunslinger Job = 24
	JobNinja      Job = 25

	JobNoviceHigh    Job = 4001
	JobSwordmanHigh  Job = 4002
	JobMageHigh      Job = 4003
	JobArcherHigh    Job = 4004
	JobAcolyteHigh   Job = 4005
	JobMerchantHigh  Job = 4006
	JobThiefHigh     Job = 4007
	JobLordKnight    Job = 4008
	JobHighPriest    Job = 4009
	JobHighWizard    Job = 4010
	JobWhitesmith    Job = 4011
	JobSniper        Job = 4012
	JobAssassinCross Job = 4013
	JobPaladin       Job = 4015
	JobChampion      Job = 4016
	JobProfessor     Job = 4017
	JobStalker       Job = 4018
	JobCreator       Job = 4019
	JobClown         Job = 4020
	JobGypsy         Job = 4021
	JobTaekwon       Job = 4046
	JobStarGladiator Job = 4047
	JobSoulLinker    Job = 4049
)

// Family — группа классов, разделяющих одну цепочку правил автоплея.
type Family int8

const (
	FamilyNone Family = iota
	FamilyKnight
	FamilyCrusader
	FamilyMage
	FamilyPriest
	FamilyMonk
	FamilyBlacksmith
	FamilyAlchemist
	FamilyAssassin
	FamilyRogue
	FamilyHunter
	FamilyPerformer
	FamilyGunslinger
	FamilyNinja
	familyCount
)

var familyNames = [...]string{
	FamilyNone:       "None",
	FamilyKnight:     "Knight",
	FamilyCrusader:   "Crusader",
	FamilyMage:       "Mage",
	FamilyPriest:     "Priest",
	FamilyMonk:       "Monk",
	FamilyBlacksmith: "Blacksmith",
	FamilyAlchemist:  "Alchemist",
	FamilyAssassin:   "Assassin",
	FamilyRogue:      "Rogue",
	FamilyHunter:     "Hunter",
	FamilyPerformer:  "Performer",
	FamilyGunslinger: "Gunslinger",
	FamilyNinja:      "Ninja",
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return "Unknown"
	}
	return familyNames[f]
}

// AllFamilies returns every family that owns a rule chain.
func AllFamilies() []Family {
	out := make([]Family, 0, familyCount-1)
	for f := FamilyKnight; f < familyCount; f++ {
		out = append(out, f)
	}
	return out
}

// ClassInfo holds metadata for a single job.
type ClassInfo struct {
	ID       Job
	Name     string
	Family   Family
	ParentID Job // -1 = no parent (base class)
	IsTrans  bool
}

// classTable stores supported jobs indexed by Job ID.
var classTable map[Job]*ClassInfo

func init() {
	classTable = map[Job]*ClassInfo{
		JobNovice:     {ID: JobNovice, Name: "Novice", ParentID: -1},
		JobSwordman:   {ID: JobSwordman, Name: "Swordman", Family: FamilyKnight, ParentID: JobNovice},
		JobMage:       {ID: JobMage, Name: "Mage", Family: FamilyMage, ParentID: JobNovice},
		JobArcher:     {ID: JobArcher, Name: "Archer", Family: FamilyHunter, ParentID: JobNovice},
		JobAcolyte:    {ID: JobAcolyte, Name: "Acolyte", Family: FamilyPriest, ParentID: JobNovice},
		JobMerchant:   {ID: JobMerchant, Name: "Merchant", Family: FamilyBlacksmith, ParentID: JobNovice},
		JobThief:      {ID: JobThief, Name: "Thief", Family: FamilyAssassin, ParentID: JobNovice},
		JobKnight:     {ID: JobKnight, Name: "Knight", Family: FamilyKnight, ParentID: JobSwordman},
		JobPriest:     {ID: JobPriest, Name: "Priest", Family: FamilyPriest, ParentID: JobAcolyte},
		JobWizard:     {ID: JobWizard, Name: "Wizard", Family: FamilyMage, ParentID: JobMage},
		JobBlacksmith: {ID: JobBlacksmith, Name: "Blacksmith", Family: FamilyBlacksmith, ParentID: JobMerchant},
		JobHunter:     {ID: JobHunter, Name: "Hunter", Family: FamilyHunter, ParentID: JobArcher},
		JobAssassin:   {ID: JobAssassin, Name: "Assassin", Family: FamilyAssassin, ParentID: JobThief},
		JobCrusader:   {ID: JobCrusader, Name: "Crusader", Family: FamilyCrusader, ParentID: JobSwordman},
		JobMonk:       {ID: JobMonk, Name: "Monk", Family: FamilyMonk, ParentID: JobAcolyte},
		JobSage:       {ID: JobSage, Name: "Sage", Family: FamilyMage, ParentID: JobMage},
		JobRogue:      {ID: JobRogue, Name: "Rogue", Family: FamilyRogue, ParentID: JobThief},
		JobAlchemist:  {ID: JobAlchemist, Name: "Alchemist", Family: FamilyAlchemist, ParentID: JobMerchant},
		JobBard:       {ID: JobBard, Name: "Bard", Family: FamilyPerformer, ParentID: JobArcher},
		JobDancer:     {ID: JobDancer, Name: "Dancer", Family: FamilyPerformer, ParentID: JobArcher},
		JobGunslinger: {ID: JobGunslinger, Name: "Gunslinger", Family: FamilyGunslinger, ParentID: JobNovice},
		JobNinja:      {ID: JobNinja, Name: "Ninja", Family: FamilyNinja, ParentID: JobNovice},

		// --- Transcendent ---
		JobNoviceHigh:    {ID: JobNoviceHigh, Name: "High Novice", ParentID: -1, IsTrans: true},
		JobSwordmanHigh:  {ID: JobSwordmanHigh, Name: "High Swordman", Family: FamilyKnight, ParentID: JobNoviceHigh, IsTrans: true},
		JobMageHigh:      {ID: JobMageHigh, Name: "High Mage", Family: FamilyMage, ParentID: JobNoviceHigh, IsTrans: true},
		JobArcherHigh:    {ID: JobArcherHigh, Name: "High Archer", Family: FamilyHunter, ParentID: JobNoviceHigh, IsTrans: true},
		JobAcolyteHigh:   {ID: JobAcolyteHigh, Name: "High Acolyte", Family: FamilyPriest, ParentID: JobNoviceHigh, IsTrans: true},
		JobMerchantHigh:  {ID: JobMerchantHigh, Name: "High Merchant", Family: FamilyBlacksmith, ParentID: JobNoviceHigh, IsTrans: true},
		JobThiefHigh:     {ID: JobThiefHigh, Name: "High Thief", Family: FamilyAssassin, ParentID: JobNoviceHigh, IsTrans: true},
		JobLordKnight:    {ID: JobLordKnight, Name: "Lord Knight", Family: FamilyKnight, ParentID: JobSwordmanHigh, IsTrans: true},
		JobHighPriest:    {ID: JobHighPriest, Name: "High Priest", Family: FamilyPriest, ParentID: JobAcolyteHigh, IsTrans: true},
		JobHighWizard:    {ID: JobHighWizard, Name: "High Wizard", Family: FamilyMage, ParentID: JobMageHigh, IsTrans: true},
		JobWhitesmith:    {ID: JobWhitesmith, Name: "Whitesmith", Family: FamilyBlacksmith, ParentID: JobMerchantHigh, IsTrans: true},
		JobSniper:        {ID: JobSniper, Name: "Sniper", Family: FamilyHunter, ParentID: JobArcherHigh, IsTrans: true},
		JobAssassinCross: {ID: JobAssassinCross, Name: "Assassin Cross", Family: FamilyAssassin, ParentID: JobThiefHigh, IsTrans: true},
		JobPaladin:       {ID: JobPaladin, Name: "Paladin", Family: FamilyCrusader, ParentID: JobSwordmanHigh, IsTrans: true},
		JobChampion:      {ID: JobChampion, Name: "Champion", Family: FamilyMonk, ParentID: JobAcolyteHigh, IsTrans: true},
		JobProfessor:     {ID: JobProfessor, Name: "Professor", Family: FamilyMage, ParentID: JobMageHigh, IsTrans: true},
		JobStalker:       {ID: JobStalker, Name: "Stalker", Family: FamilyRogue, ParentID: JobThiefHigh, IsTrans: true},
		JobCreator:       {ID: JobCreator, Name: "Creator", Family: FamilyAlchemist, ParentID: JobMerchantHigh, IsTrans: true},
		JobClown:         {ID: JobClown, Name: "Clown", Family: FamilyPerformer, ParentID: JobArcherHigh, IsTrans: true},
		JobGypsy:         {ID: JobGypsy, Name: "Gypsy", Family: FamilyPerformer, ParentID: JobArcherHigh, IsTrans: true},

		// --- Expanded without rule chains ---
		JobTaekwon:       {ID: JobTaekwon, Name: "Taekwon", ParentID: JobNovice},
		JobStarGladiator: {ID: JobStarGladiator, Name: "Star Gladiator", ParentID: JobTaekwon},
		JobSoulLinker:    {ID: JobSoulLinker, Name: "Soul Linker", ParentID: JobTaekwon},
	}
}

// GetClassInfo returns class metadata by Job ID.
// Returns nil if job is unknown.
func GetClassInfo(job Job) *ClassInfo {
	return classTable[job]
}

// FamilyOf returns the rule family of a job, FamilyNone for unknown jobs.
func FamilyOf(job Job) Family {
	info := classTable[job]
	if info == nil {
		return FamilyNone
	}
	return info.Family
}

// String returns human-readable job name.
func (j Job) String() string {
	if info := classTable[j]; info != nil {
		return info.Name
	}
	return "Unknown"
}

// ParseJob resolves a job by case-sensitive name.
// Returns (0, false) if name is unknown.
func ParseJob(name string) (Job, bool) {
	for id, info := range classTable {
		if info.Name == name {
			return id, true
		}
	}
	return 0, false
}
