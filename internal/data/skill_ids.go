package data

// Skill IDs (rAthena numbering).
const (
	SkillSMBash         int32 = 5
	SkillSMMagnum       int32 = 7
	SkillSMEndure       int32 = 8
	SkillMGNapalm       int32 = 11
	SkillMGSoul         int32 = 13
	SkillMGCold         int32 = 14
	SkillMGFrost        int32 = 15
	SkillMGFireBall     int32 = 17
	SkillMGFireBolt     int32 = 19
	SkillMGLightning    int32 = 20
	SkillMGThunderstorm int32 = 21

	SkillALHeal     int32 = 28
	SkillALIncAgi   int32 = 29
	SkillALAngelus  int32 = 33
	SkillALBlessing int32 = 34

	SkillMCMammonite int32 = 42

	SkillACConcentration int32 = 45
	SkillACDouble        int32 = 46
	SkillACShower        int32 = 47

	SkillTFPoison int32 = 52

	SkillKNPierce         int32 = 56
	SkillKNBrandishSpear  int32 = 57
	SkillKNSpearStab      int32 = 58
	SkillKNSpearBoomerang int32 = 59
	SkillKNTwoHandQuicken int32 = 60
	SkillKNBowlingBash    int32 = 62

	SkillPRKyrie      int32 = 73
	SkillPRMagnificat int32 = 74
	SkillPRGloria     int32 = 75
	SkillPRMagnus     int32 = 79

	SkillWZFirePillar  int32 = 80
	SkillWZSightRasher int32 = 81
	SkillWZMeteor      int32 = 83
	SkillWZJupitel     int32 = 84
	SkillWZVermilion   int32 = 85
	SkillWZWaterBall   int32 = 86
	SkillWZFrostNova   int32 = 88
	SkillWZStormGust   int32 = 89
	SkillWZEarthSpike  int32 = 90
	SkillWZHeavenDrive int32 = 91

	SkillBSAdrenaline    int32 = 111
	SkillBSWeaponPerfect int32 = 112
	SkillBSOverThrust    int32 = 113
	SkillBSMaximize      int32 = 114

	SkillHTBlitzBeat int32 = 129

	SkillASSonicBlow     int32 = 136
	SkillASGrimtooth     int32 = 137
	SkillASEnchantPoison int32 = 138
	SkillASPoisonReact   int32 = 139

	SkillALHolyLight  int32 = 156
	SkillMGEnergyCoat int32 = 157

	SkillRGBackstab int32 = 212
	SkillRGRaid     int32 = 214

	SkillAMDemonstration int32 = 229
	SkillAMAcidTerror    int32 = 230
	SkillAMCPWeapon      int32 = 234
	SkillAMCPShield      int32 = 235
	SkillAMCPArmor       int32 = 236
	SkillAMCPHelm        int32 = 237

	SkillCRAutoGuard       int32 = 249
	SkillCRShieldCharge    int32 = 250
	SkillCRShieldBoomerang int32 = 251
	SkillCRReflectShield   int32 = 252
	SkillCRHolyCross       int32 = 253
	SkillCRGrandCross      int32 = 254
	SkillCRSpearQuicken    int32 = 258

	SkillMOInvestigate     int32 = 266
	SkillMOFingerOffensive int32 = 267

	SkillBAMusicalStrike int32 = 316
	SkillDCThrowArrow    int32 = 317

	SkillLKAuraBlade     int32 = 355
	SkillLKParrying      int32 = 356
	SkillLKConcentration int32 = 357

	SkillCHTigerFist  int32 = 371
	SkillCHChainCrush int32 = 372

	SkillASCEDP     int32 = 378
	SkillASCBreaker int32 = 379

	SkillSNSight         int32 = 380
	SkillSNSharpShooting int32 = 382
	SkillSNWindWalk      int32 = 383

	SkillLKSpiralPierce   int32 = 397
	SkillHWNapalmVulcan   int32 = 400
	SkillASCMeteorAssault int32 = 406

	SkillPAShieldChain int32 = 480

	SkillGSTripleAction  int32 = 502
	SkillGSAdjustment    int32 = 505
	SkillGSIncreasing    int32 = 506
	SkillGSMagicalBullet int32 = 507
	SkillGSTracking      int32 = 512
	SkillGSPiercingShot  int32 = 514
	SkillGSRapidShower   int32 = 515
	SkillGSDesperado     int32 = 516
	SkillGSGatlingFever  int32 = 517
	SkillGSFullBuster    int32 = 519
	SkillGSSpreadAttack  int32 = 520
	SkillGSGroundDrift   int32 = 521

	SkillNJSyuriken   int32 = 524
	SkillNJKunai      int32 = 525
	SkillNJHuuma      int32 = 526
	SkillNJKasumikiri int32 = 529
	SkillNJUtsusemi   int32 = 532
	SkillNJKouenka    int32 = 535
	SkillNJHyousensou int32 = 538
	SkillNJHuujin     int32 = 541
	SkillNJRaigekisai int32 = 542
	SkillNJKamaitachi int32 = 543
	SkillNJNen        int32 = 544
)
