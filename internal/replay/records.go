package replay

// BattlePerformance holds the replay owner's combat statistics for the one
// battle the capture records. Fields the capture's format version omits stay
// at their zero value; the clients add and remove counters between releases
// and an absent counter is never a parse failure.
type BattlePerformance struct {
	Stunned                         int     `json:"stunned"`
	Achievements                    []int   `json:"achievements"`
	DirectHits                      int     `json:"directHits"`
	DamageAssistedRadio             int     `json:"damageAssistedRadio"`
	StunDuration                    float64 `json:"stunDuration"`
	WinPoints                       int     `json:"winPoints"`
	DamagedWhileMoving              int     `json:"damagedWhileMoving"`
	Kills                           int     `json:"kills"`
	PercentOfTotalTeamDamage        float64 `json:"percentFromTotalTeamDamage"`
	MarkOfMastery                   int     `json:"markOfMastery"`
	NoDamageDirectHitsReceived      int     `json:"noDamageDirectHitsReceived"`
	EquipmentDamageDealt            int     `json:"equipmentDamageDealt"`
	TeamKills                       int     `json:"tkills"`
	Shots                           int     `json:"shots"`
	Team                            int     `json:"team"`
	DeathCount                      int     `json:"deathCount"`
	StunCount                       int     `json:"stunNum"`
	Spotted                         int     `json:"spotted"`
	KillerID                        int64   `json:"killerID"`
	SoloFlagCapture                 int     `json:"soloFlagCapture"`
	MarksOnGun                      int     `json:"marksOnGun"`
	KilledAndDamagedByAllSquadmates int     `json:"killedAndDamagedByAllSquadmates"`
	RolloutsCount                   int     `json:"rolloutsCount"`
	Health                          int     `json:"health"`
	StopRespawn                     Flag    `json:"stopRespawn"`
	TeamDamageDealt                 int     `json:"tdamageDealt"`
	ResourceAbsorbed                int     `json:"resourceAbsorbed"`
	DamagedWhileEnemyMoving         int     `json:"damagedWhileEnemyMoving"`
	DamageReceived                  int     `json:"damageReceived"`
	PercentFromSecondBestDamage     float64 `json:"percentFromSecondBestDamage"`
	CommittedSuicide                Flag    `json:"committedSuicide"`
	LifeTime                        int     `json:"lifeTime"`
	DamageAssistedTrack             int     `json:"damageAssistedTrack"`
	SniperDamageDealt               int     `json:"sniperDamageDealt"`
	FairplayFactor                  int     `json:"fairplayFactor10"`
	DamageBlockedByArmor            int     `json:"damageBlockedByArmor"`
	DroppedCapturePoints            int     `json:"droppedCapturePoints"`
	DamageReceivedFromInvisibles    int     `json:"damageReceivedFromInvisibles"`
	MaxHealth                       int     `json:"maxHealth"`
	MovingAvgDamage                 float64 `json:"movingAvgDamage"`
	FlagCapture                     int     `json:"flagCapture"`
	KillsBeforeTeamWasDamaged       int     `json:"killsBeforeTeamWasDamaged"`
	PotentialDamageReceived         int     `json:"potentialDamageReceived"`
	DirectTeamHits                  int     `json:"directTeamHits"`
	DamageDealt                     int     `json:"damageDealt"`
	PiercingsReceived               int     `json:"piercingsReceived"`
	Piercings                       int     `json:"piercings"`
	PrevMarkOfMastery               int     `json:"prevMarkOfMastery"`
	Damaged                         int     `json:"damaged"`
	DeathReason                     int     `json:"deathReason"`
	CapturePoints                   int     `json:"capturePoints"`
	DamageBeforeTeamWasDamaged      int     `json:"damageBeforeTeamWasDamaged"`
	ExplosionHitsReceived           int     `json:"explosionHitsReceived"`
	DamageRating                    float64 `json:"damageRating"`
	Mileage                         int     `json:"mileage"`
	ExplosionHits                   int     `json:"explosionHits"`
	DirectHitsReceived              int     `json:"directHitsReceived"`
	IsTeamKiller                    Flag    `json:"isTeamKiller"`
	CapturingBase                   Flag    `json:"capturingBase"`
	DamageAssistedStun              int     `json:"damageAssistedStun"`
	DamageAssistedSmoke             int     `json:"damageAssistedSmoke"`
	DestroyedModules                int     `json:"tdestroyedModules"`
	DamageAssistedInspire           int     `json:"damageAssistedInspire"`
}

// BattleEconomy is the credit/gold breakdown for the battle, with every
// bonus field defaulting to zero when the client version did not record it.
type BattleEconomy struct {
	AutoLoadCost                       []int `json:"autoLoadCost"`
	AutoEquipCost                      []int `json:"autoEquipCost"`
	CreditsToDraw                      int   `json:"creditsToDraw"`
	OriginalPremSquadCredits           int   `json:"originalPremSquadCredits"`
	CreditsContributionIn              int   `json:"creditsContributionIn"`
	EventCredits                       int   `json:"eventCredits"`
	PiggyBank                          int   `json:"piggyBank"`
	PremiumCreditsFactor100            int   `json:"premiumCreditsFactor100"`
	OriginalCreditsContributionIn      int   `json:"originalCreditsContributionIn"`
	OriginalCreditsPenalty             int   `json:"originalCreditsPenalty"`
	OriginalGold                       int   `json:"originalGold"`
	BoosterCredits                     int   `json:"boosterCredits"`
	Referral20Credits                  int   `json:"referral20Credits"`
	SubtotalEventCoin                  int   `json:"subtotalEventCoin"`
	BoosterCreditsFactor100            int   `json:"boosterCreditsFactor100"`
	CreditsContributionOut             int   `json:"creditsContributionOut"`
	Credits                            int   `json:"credits"`
	GoldReplay                         int   `json:"goldReplay"`
	CreditsPenalty                     int   `json:"creditsPenalty"`
	Repair                             int   `json:"repair"`
	OriginalCredits                    int   `json:"originalCredits"`
	OrderCredits                       int   `json:"orderCredits"`
	OrderCreditsFactor100              int   `json:"orderCreditsFactor100"`
	OriginalCrystal                    int   `json:"originalCrystal"`
	AppliedPremiumCreditsFactor100     int   `json:"appliedPremiumCreditsFactor100"`
	PremSquadCredits                   int   `json:"premSquadCredits"`
	EventGold                          int   `json:"eventGold"`
	Gold                               int   `json:"gold"`
	OriginalCreditsContributionInSquad int   `json:"originalCreditsContributionInSquad"`
	OriginalEventCoin                  int   `json:"originalEventCoin"`
	FactualCredits                     int   `json:"factualCredits"`
	EventCoin                          int   `json:"eventCoin"`
	Crystal                            int   `json:"crystal"`
	CrystalReplay                      int   `json:"crystalReplay"`
	OriginalCreditsToDrawSquad         int   `json:"originalCreditsToDrawSquad"`
	SubtotalCredits                    int   `json:"subtotalCredits"`
	CreditsReplay                      int   `json:"creditsReplay"`
	EventEventCoin                     int   `json:"eventEventCoin"`
	SubtotalCrystal                    int   `json:"subtotalCrystal"`
	AchievementCredits                 int   `json:"achievementCredits"`
	SubtotalGold                       int   `json:"subtotalGold"`
	EventCrystal                       int   `json:"eventCrystal"`
	EventCoinReplay                    int   `json:"eventCoinReplay"`
	AutoRepairCost                     int   `json:"autoRepairCost"`
	OriginalCreditsPenaltySquad        int   `json:"originalCreditsPenaltySquad"`
}

// ResupplyAmmunition is the credit cost of auto-loaded ammunition.
func (e BattleEconomy) ResupplyAmmunition() int {
	return firstOrZero(e.AutoLoadCost)
}

// ResupplyConsumables is the credit cost of auto-equipped consumables.
func (e BattleEconomy) ResupplyConsumables() int {
	return firstOrZero(e.AutoEquipCost)
}

// BattleXP is the experience breakdown for the battle. Same defaulting rules
// as BattleEconomy.
type BattleXP struct {
	OrderFreeXPFactor100          int `json:"orderFreeXPFactor100"`
	OrderXPFactor100              int `json:"orderXPFactor100"`
	FreeXPReplay                  int `json:"freeXPReplay"`
	XPOther                       int `json:"xp/other"`
	PremiumTmenXPFactor100        int `json:"premiumTmenXPFactor100"`
	AchievementXP                 int `json:"achievementXP"`
	IGRXPFactor10                 int `json:"igrXPFactor10"`
	EventTMenXP                   int `json:"eventTMenXP"`
	PremiumPlusXPFactor100        int `json:"premiumPlusXPFactor100"`
	PremiumPlusTmenXPFactor100    int `json:"premiumPlusTmenXPFactor100"`
	OriginalTMenXP                int `json:"originalTMenXP"`
	Referral20XP                  int `json:"referral20XP"`
	SubtotalTMenXP                int `json:"subtotalTMenXP"`
	PremiumVehicleXPFactor100     int `json:"premiumVehicleXPFactor100"`
	AdditionalXPFactor10          int `json:"additionalXPFactor10"`
	FactualXP                     int `json:"factualXP"`
	OrderFreeXP                   int `json:"orderFreeXP"`
	BoosterTMenXPFactor100        int `json:"boosterTMenXPFactor100"`
	OriginalXP                    int `json:"originalXP"`
	AppliedPremiumXPFactor100     int `json:"appliedPremiumXPFactor100"`
	BoosterXP                     int `json:"boosterXP"`
	FactualFreeXP                 int `json:"factualFreeXP"`
	DailyXPFactor10               int `json:"dailyXPFactor10"`
	EventFreeXP                   int `json:"eventFreeXP"`
	PlayerRankXPFactor100         int `json:"playerRankXPFactor100"`
	XPPenalty                     int `json:"xpPenalty"`
	XP                            int `json:"xp"`
	BoosterXPFactor100            int `json:"boosterXPFactor100"`
	OrderTMenXP                   int `json:"orderTMenXP"`
	OriginalXPPenalty             int `json:"originalXPPenalty"`
	OrderTMenXPFactor100          int `json:"orderTMenXPFactor100"`
	SubtotalXP                    int `json:"subtotalXP"`
	SquadXP                       int `json:"squadXP"`
	OriginalFreeXP                int `json:"originalFreeXP"`
	XPAssist                      int `json:"xp/assist"`
	FreeXP                        int `json:"freeXP"`
	PremiumVehicleXP              int `json:"premiumVehicleXP"`
	Referral20XPFactor100         int `json:"referral20XPFactor100"`
	EventXP                       int `json:"eventXP"`
	SubtotalFreeXP                int `json:"subtotalFreeXP"`
	AchievementFreeXP             int `json:"achievementFreeXP"`
	PlayerRankXP                  int `json:"playerRankXP"`
	SquadXPFactor100              int `json:"squadXPFactor100"`
	AppliedPremiumTmenXPFactor100 int `json:"appliedPremiumTmenXPFactor100"`
	BoosterTMenXP                 int `json:"boosterTMenXP"`
	XPAttack                      int `json:"xp/attack"`
	RefSystemXPFactor10           int `json:"refSystemXPFactor10"`
	TmenXPReplay                  int `json:"tmenXPReplay"`
	PremiumXPFactor100            int `json:"premiumXPFactor100"`
	TmenXP                        int `json:"tmenXP"`
	BoosterFreeXPFactor100        int `json:"boosterFreeXPFactor100"`
	BoosterFreeXP                 int `json:"boosterFreeXP"`
	BattleNum                     int `json:"battleNum"`
}
