package mob

import "github.com/arloliu/eikit/format"

// Section ids.
const (
	IDUnknown                 SectionID = 0xFFFFFFFF
	IDWorldSet                SectionID = 0x0000ABD0
	IDObjDefLogic             SectionID = 0x0000B010
	IDPrObjectDBFile          SectionID = 0x0000D000
	IDDirName                 SectionID = 0x0000E002
	IDDiplomation             SectionID = 0xDDDDDDD1
	IDWsWindDir               SectionID = 0x0000ABD1
	IDObjectSection           SectionID = 0x0000B000
	IDObjRotation             SectionID = 0x0000B00A
	IDObjPlayer               SectionID = 0x0000B011
	IDDirNinst                SectionID = 0x0000E003
	IDDiplomationFOF          SectionID = 0xDDDDDDD2
	IDObjectDBFile            SectionID = 0x0000A000
	IDLightSection            SectionID = 0x0000AA00
	IDWsWindStr               SectionID = 0x0000ABD2
	IDObject                  SectionID = 0x0000B001
	IDObjTexture              SectionID = 0x0000B00B
	IDObjParentID             SectionID = 0x0000B012
	IDSoundSection            SectionID = 0x0000CC00
	IDSoundResname            SectionID = 0x0000CC0A
	IDParticlSection          SectionID = 0x0000DD00
	IDDirParentFolder         SectionID = 0x0000E004
	IDSecRange                SectionID = 0x0000FF00
	IDDiplomationPlNames      SectionID = 0xDDDDDDD3
	IDLight                   SectionID = 0x0000AA01
	IDWsTime                  SectionID = 0x0000ABD3
	IDNID                     SectionID = 0x0000B002
	IDObjComplection          SectionID = 0x0000B00C
	IDObjUseInScript          SectionID = 0x0000B013
	IDSound                   SectionID = 0x0000CC01
	IDSoundRange2             SectionID = 0x0000CC0B
	IDParticl                 SectionID = 0x0000DD01
	IDDirType                 SectionID = 0x0000E005
	IDMainRange               SectionID = 0x0000FF01
	IDVssBsCommands           SectionID = 0x00001E10
	IDLightRange              SectionID = 0x0000AA02
	IDWsAmbient               SectionID = 0x0000ABD4
	IDObjType                 SectionID = 0x0000B003
	IDObjBodyParts            SectionID = 0x0000B00D
	IDObjIsShadow             SectionID = 0x0000B014
	IDSoundID                 SectionID = 0x0000CC02
	IDParticlID               SectionID = 0x0000DD02
	IDRange                   SectionID = 0x0000FF02
	IDVssSection              SectionID = 0x00001E00
	IDVssIsstart              SectionID = 0x00001E0A
	IDVssCustomScript         SectionID = 0x00001E11
	IDLightName               SectionID = 0x0000AA03
	IDWsSunLight              SectionID = 0x0000ABD5
	IDObjName                 SectionID = 0x0000B004
	IDParentTemplate          SectionID = 0x0000B00E
	IDObjR                    SectionID = 0x0000B015
	IDSoundPosition           SectionID = 0x0000CC03
	IDSoundAmbient            SectionID = 0x0000CC0D
	IDParticlPosition         SectionID = 0x0000DD03
	IDUnit                    SectionID = 0xBBBB0000
	IDUnitNeedImport          SectionID = 0xBBBB000A
	IDVssTriger               SectionID = 0x00001E01
	IDVssLink                 SectionID = 0x00001E0B
	IDLightPosition           SectionID = 0x0000AA04
	IDObjIndex                SectionID = 0x0000B005
	IDObjComments             SectionID = 0x0000B00F
	IDObjQuestInfo            SectionID = 0x0000B016
	IDSoundRange              SectionID = 0x0000CC04
	IDSoundIsMusic            SectionID = 0x0000CC0E
	IDParticlComments         SectionID = 0x0000DD04
	IDMagicTrap               SectionID = 0xBBAB0000
	IDUnitR                   SectionID = 0xBBBB0001
	IDUnitLogic               SectionID = 0xBBBC0000
	IDUnitLogicWait           SectionID = 0xBBBC000A
	IDVssCheck                SectionID = 0x00001E02
	IDVssGroup                SectionID = 0x00001E0C
	IDLightID                 SectionID = 0x0000AA05
	IDObjTemplate             SectionID = 0x0000B006
	IDSoundName               SectionID = 0x0000CC05
	IDParticlName             SectionID = 0x0000DD05
	IDMinID                   SectionID = 0x0000FF05
	IDMtDiplomacy             SectionID = 0xBBAB0001
	IDLever                   SectionID = 0xBBAC0000
	IDUnitPrototype           SectionID = 0xBBBB0002
	IDUnitLogicAgressiv       SectionID = 0xBBBC0001
	IDUnitLogicAlarmCondition SectionID = 0xBBBC000B
	IDGuardPt                 SectionID = 0xBBBD0000
	IDVssPath                 SectionID = 0x00001E03
	IDVssIsUseGroup           SectionID = 0x00001E0D
	IDLightShadow             SectionID = 0x0000AA06
	IDObjPrimTxtr             SectionID = 0x0000B007
	IDSoundMin                SectionID = 0x0000CC06
	IDParticlType             SectionID = 0x0000DD06
	IDMaxID                   SectionID = 0x0000FF06
	IDMtSpell                 SectionID = 0xBBAB0002
	IDLeverScienceStats       SectionID = 0xBBAC0001
	IDUnitItems               SectionID = 0xBBBB0003
	IDUnitLogicCyclic         SectionID = 0xBBBC0002
	IDUnitLogicHelp           SectionID = 0xBBBC000C
	IDGuardPtPosition         SectionID = 0xBBBD0001
	IDActionPt                SectionID = 0xBBBE0000
	IDVssID                   SectionID = 0x00001E04
	IDVssVariable             SectionID = 0x00001E0E
	IDLightColor              SectionID = 0x0000AA07
	IDObjSecTxtr              SectionID = 0x0000B008
	IDSoundMax                SectionID = 0x0000CC07
	IDParticlScale            SectionID = 0x0000DD07
	IDAIGraph                 SectionID = 0x31415926
	IDMtAreas                 SectionID = 0xBBAB0003
	IDLeverCurState           SectionID = 0xBBAC0002
	IDUnitStats               SectionID = 0xBBBB0004
	IDUnitLogicModel          SectionID = 0xBBBC0003
	IDUnitLogicAlwaysActive   SectionID = 0xBBBC000D
	IDGuardPtAction           SectionID = 0xBBBD0002
	IDActionPtLookPt          SectionID = 0xBBBE0001
	IDTorch                   SectionID = 0xBBBF0000
	IDVssRect                 SectionID = 0x00001E05
	IDVssBsCheck              SectionID = 0x00001E0F
	IDLightComments           SectionID = 0x0000AA08
	IDObjPosition             SectionID = 0x0000B009
	IDSoundComments           SectionID = 0x0000CC08
	IDMtTargets               SectionID = 0xBBAB0004
	IDLeverTotalState         SectionID = 0xBBAC0003
	IDUnitQuestItems          SectionID = 0xBBBB0005
	IDUnitLogicGuardR         SectionID = 0xBBBC0004
	IDUnitLogicAgressionMode  SectionID = 0xBBBC000E
	IDActionPtWaitSeg         SectionID = 0xBBBE0002
	IDTorchStrenght           SectionID = 0xBBBF0001
	IDVssSrcID                SectionID = 0x00001E06
	IDSoundVolume             SectionID = 0x0000CC09
	IDMtCastInterval          SectionID = 0xBBAB0005
	IDLeverIsCycled           SectionID = 0xBBAC0004
	IDUnitQuickItems          SectionID = 0xBBBB0006
	IDUnitLogicGuardPt        SectionID = 0xBBBC0005
	IDActionPtTurnSpeed       SectionID = 0xBBBE0003
	IDTorchPtLink             SectionID = 0xBBBF0002
	IDVssDstID                SectionID = 0x00001E07
	IDLeverCastOnce           SectionID = 0xBBAC0005
	IDUnitSpells              SectionID = 0xBBBB0007
	IDUnitLogicNalarm         SectionID = 0xBBBC0006
	IDActionPtFlags           SectionID = 0xBBBE0004
	IDTorchSound              SectionID = 0xBBBF0003
	IDVssTitle                SectionID = 0x00001E08
	IDLeverScienceStatsNew    SectionID = 0xBBAC0006
	IDUnitWeapons             SectionID = 0xBBBB0008
	IDUnitLogicUse            SectionID = 0xBBBC0007
	IDVssCommands             SectionID = 0x00001E09
	IDDirectoryElements       SectionID = 0x0000F000
	IDLeverIsDoor             SectionID = 0xBBAC0007
	IDUnitArmors              SectionID = 0xBBBB0009
	IDUnitLogicRevenge        SectionID = 0xBBBC0008
	IDDirectory               SectionID = 0x0000E000
	IDScriptTextOld           SectionID = 0xACCEECCA
	IDLeverRecalcGraph        SectionID = 0xBBAC0008
	IDUnitLogicFear           SectionID = 0xBBBC0009
	IDScObjectDBFile          SectionID = 0x0000C000
	IDFolder                  SectionID = 0x0000E001
	IDScriptText              SectionID = 0xACCEECCB
)

type sectionInfo struct {
	name string
	typ  format.SectionType
}

var registry = map[SectionID]sectionInfo{
	IDWorldSet:                {"WORLD_SET", format.SectionRecord},
	IDObjDefLogic:             {"OBJ_DEF_LOGIC", format.SectionNull},
	IDPrObjectDBFile:          {"PR_OBJECTDBFILE", format.SectionNull},
	IDDirName:                 {"DIR_NAME", format.SectionString},
	IDDiplomation:             {"DIPLOMATION", format.SectionRecord},
	IDWsWindDir:               {"WS_WIND_DIR", format.SectionPlot},
	IDObjectSection:           {"OBJECTSECTION", format.SectionRecord},
	IDObjRotation:             {"OBJROTATION", format.SectionQuaternion},
	IDObjPlayer:               {"OBJ_PLAYER", format.SectionByte},
	IDDirNinst:                {"DIR_NINST", format.SectionDword},
	IDDiplomationFOF:          {"DIPLOMATION_FOF", format.SectionDiplomacy},
	IDObjectDBFile:            {"OBJECTDBFILE", format.SectionRecord},
	IDLightSection:            {"LIGHT_SECTION", format.SectionNull},
	IDWsWindStr:               {"WS_WIND_STR", format.SectionFloat},
	IDObject:                  {"OBJECT", format.SectionRecord},
	IDObjTexture:              {"OBJTEXTURE", format.SectionNull},
	IDObjParentID:             {"OBJ_PARENT_ID", format.SectionDword},
	IDSoundSection:            {"SOUND_SECTION", format.SectionNull},
	IDSoundResname:            {"SOUND_RESNAME", format.SectionStringArray},
	IDParticlSection:          {"PARTICL_SECTION", format.SectionNull},
	IDDirParentFolder:         {"DIR_PARENT_FOLDER", format.SectionDword},
	IDSecRange:                {"SEC_RANGE", format.SectionRecord},
	IDDiplomationPlNames:      {"DIPLOMATION_PL_NAMES", format.SectionStringArray},
	IDLight:                   {"LIGHT", format.SectionRecord},
	IDWsTime:                  {"WS_TIME", format.SectionFloat},
	IDNID:                     {"NID", format.SectionDword},
	IDObjComplection:          {"OBJCOMPLECTION", format.SectionPlot},
	IDObjUseInScript:          {"OBJ_USE_IN_SCRIPT", format.SectionByte},
	IDSound:                   {"SOUND", format.SectionRecord},
	IDSoundRange2:             {"SOUND_RANGE2", format.SectionDword},
	IDParticl:                 {"PARTICL", format.SectionRecord},
	IDDirType:                 {"DIR_TYPE", format.SectionByte},
	IDMainRange:               {"MAIN_RANGE", format.SectionRecord},
	IDVssBsCommands:           {"VSS_BS_COMMANDS", format.SectionStringArray},
	IDLightRange:              {"LIGHT_RANGE", format.SectionFloat},
	IDWsAmbient:               {"WS_AMBIENT", format.SectionFloat},
	IDObjType:                 {"OBJTYPE", format.SectionDword},
	IDObjBodyParts:            {"OBJBODYPARTS", format.SectionStringArray},
	IDObjIsShadow:             {"OBJ_IS_SHADOW", format.SectionByte},
	IDSoundID:                 {"SOUND_ID", format.SectionDword},
	IDParticlID:               {"PARTICL_ID", format.SectionDword},
	IDRange:                   {"RANGE", format.SectionRecord},
	IDVssSection:              {"VSS_SECTION", format.SectionRecord},
	IDVssIsstart:              {"VSS_ISSTART", format.SectionByte},
	IDVssCustomScript:         {"VSS_CUSTOM_SRIPT", format.SectionString},
	IDLightName:               {"LIGHT_NAME", format.SectionString},
	IDWsSunLight:              {"WS_SUN_LIGHT", format.SectionFloat},
	IDObjName:                 {"OBJNAME", format.SectionString},
	IDParentTemplate:          {"PARENTTEMPLATE", format.SectionString},
	IDObjR:                    {"OBJ_R", format.SectionNull},
	IDSoundPosition:           {"SOUND_POSITION", format.SectionPlot},
	IDSoundAmbient:            {"SOUND_AMBIENT", format.SectionByte},
	IDParticlPosition:         {"PARTICL_POSITION", format.SectionPlot},
	IDUnit:                    {"UNIT", format.SectionRecord},
	IDUnitNeedImport:          {"UNIT_NEED_IMPORT", format.SectionByte},
	IDVssTriger:               {"VSS_TRIGER", format.SectionRecord},
	IDVssLink:                 {"VSS_LINK", format.SectionRecord},
	IDLightPosition:           {"LIGHT_POSITION", format.SectionPlot},
	IDObjIndex:                {"OBJINDEX", format.SectionNull},
	IDObjComments:             {"OBJCOMMENTS", format.SectionString},
	IDObjQuestInfo:            {"OBJ_QUEST_INFO", format.SectionString},
	IDSoundRange:              {"SOUND_RANGE", format.SectionDword},
	IDSoundIsMusic:            {"SOUND_IS_MUSIC", format.SectionByte},
	IDParticlComments:         {"PARTICL_COMMENTS", format.SectionString},
	IDMagicTrap:               {"MAGIC_TRAP", format.SectionRecord},
	IDUnitR:                   {"UNIT_R", format.SectionNull},
	IDUnitLogic:               {"UNIT_LOGIC", format.SectionRecord},
	IDUnitLogicWait:           {"UNIT_LOGIC_WAIT", format.SectionFloat},
	IDVssCheck:                {"VSS_CHECK", format.SectionRecord},
	IDVssGroup:                {"VSS_GROUP", format.SectionString},
	IDLightID:                 {"LIGHT_ID", format.SectionDword},
	IDObjTemplate:             {"OBJTEMPLATE", format.SectionString},
	IDSoundName:               {"SOUND_NAME", format.SectionString},
	IDParticlName:             {"PARTICL_NAME", format.SectionString},
	IDMinID:                   {"MIN_ID", format.SectionDword},
	IDMtDiplomacy:             {"MT_DIPLOMACY", format.SectionDword},
	IDLever:                   {"LEVER", format.SectionRecord},
	IDUnitPrototype:           {"UNIT_PROTOTYPE", format.SectionString},
	IDUnitLogicAgressiv:       {"UNIT_LOGIC_AGRESSIV", format.SectionNull},
	IDUnitLogicAlarmCondition: {"UNIT_LOGIC_ALARM_CONDITION", format.SectionByte},
	IDGuardPt:                 {"GUARD_PT", format.SectionRecord},
	IDVssPath:                 {"VSS_PATH", format.SectionRecord},
	IDVssIsUseGroup:           {"VSS_IS_USE_GROUP", format.SectionByte},
	IDLightShadow:             {"LIGHT_SHADOW", format.SectionByte},
	IDObjPrimTxtr:             {"OBJPRIMTXTR", format.SectionString},
	IDSoundMin:                {"SOUND_MIN", format.SectionDword},
	IDParticlType:             {"PARTICL_TYPE", format.SectionDword},
	IDMaxID:                   {"MAX_ID", format.SectionDword},
	IDMtSpell:                 {"MT_SPELL", format.SectionString},
	IDLeverScienceStats:       {"LEVER_SCIENCE_STATS", format.SectionNull},
	IDUnitItems:               {"UNIT_ITEMS", format.SectionNull},
	IDUnitLogicCyclic:         {"UNIT_LOGIC_CYCLIC", format.SectionByte},
	IDUnitLogicHelp:           {"UNIT_LOGIC_HELP", format.SectionFloat},
	IDGuardPtPosition:         {"GUARD_PT_POSITION", format.SectionPlot},
	IDActionPt:                {"ACTION_PT", format.SectionRecord},
	IDVssID:                   {"VSS_ID", format.SectionDword},
	IDVssVariable:             {"VSS_VARIABLE", format.SectionRecord},
	IDLightColor:              {"LIGHT_COLOR", format.SectionPlot},
	IDObjSecTxtr:              {"OBJSECTXTR", format.SectionString},
	IDSoundMax:                {"SOUND_MAX", format.SectionDword},
	IDParticlScale:            {"PARTICL_SCALE", format.SectionFloat},
	IDAIGraph:                 {"AIGRAPH", format.SectionAiGraph},
	IDMtAreas:                 {"MT_AREAS", format.SectionAreaArray},
	IDLeverCurState:           {"LEVER_CUR_STATE", format.SectionByte},
	IDUnitStats:               {"UNIT_STATS", format.SectionUnitStats},
	IDUnitLogicModel:          {"UNIT_LOGIC_MODEL", format.SectionDword},
	IDUnitLogicAlwaysActive:   {"UNIT_LOGIC_ALWAYS_ACTIVE", format.SectionByte},
	IDGuardPtAction:           {"GUARD_PT_ACTION", format.SectionNull},
	IDActionPtLookPt:          {"ACTION_PT_LOOK_PT", format.SectionPlot},
	IDTorch:                   {"TORCH", format.SectionRecord},
	IDVssRect:                 {"VSS_RECT", format.SectionRectangle},
	IDVssBsCheck:              {"VSS_BS_CHECK", format.SectionStringArray},
	IDLightComments:           {"LIGHT_COMMENTS", format.SectionString},
	IDObjPosition:             {"OBJPOSITION", format.SectionPlot},
	IDSoundComments:           {"SOUND_COMMENTS", format.SectionString},
	IDMtTargets:               {"MT_TARGETS", format.SectionPlot2DArray},
	IDLeverTotalState:         {"LEVER_TOTAL_STATE", format.SectionByte},
	IDUnitQuestItems:          {"UNIT_QUEST_ITEMS", format.SectionStringArray},
	IDUnitLogicGuardR:         {"UNIT_LOGIC_GUARD_R", format.SectionFloat},
	IDUnitLogicAgressionMode:  {"UNIT_LOGIC_AGRESSION_MODE", format.SectionByte},
	IDActionPtWaitSeg:         {"ACTION_PT_WAIT_SEG", format.SectionDword},
	IDTorchStrenght:           {"TORCH_STRENGHT", format.SectionFloat},
	IDVssSrcID:                {"VSS_SRC_ID", format.SectionDword},
	IDSoundVolume:             {"SOUND_VOLUME", format.SectionNull},
	IDMtCastInterval:          {"MT_CAST_INTERVAL", format.SectionDword},
	IDLeverIsCycled:           {"LEVER_IS_CYCLED", format.SectionByte},
	IDUnitQuickItems:          {"UNIT_QUICK_ITEMS", format.SectionStringArray},
	IDUnitLogicGuardPt:        {"UNIT_LOGIC_GUARD_PT", format.SectionPlot},
	IDActionPtTurnSpeed:       {"ACTION_PT_TURN_SPEED", format.SectionDword},
	IDTorchPtLink:             {"TORCH_PTLINK", format.SectionPlot},
	IDVssDstID:                {"VSS_DST_ID", format.SectionDword},
	IDLeverCastOnce:           {"LEVER_CAST_ONCE", format.SectionByte},
	IDUnitSpells:              {"UNIT_SPELLS", format.SectionStringArray},
	IDUnitLogicNalarm:         {"UNIT_LOGIC_NALARM", format.SectionByte},
	IDActionPtFlags:           {"ACTION_PT_FLAGS", format.SectionByte},
	IDTorchSound:              {"TORCH_SOUND", format.SectionString},
	IDVssTitle:                {"VSS_TITLE", format.SectionString},
	IDLeverScienceStatsNew:    {"LEVER_SCIENCE_STATS_NEW", format.SectionLeverStats},
	IDUnitWeapons:             {"UNIT_WEAPONS", format.SectionStringArray},
	IDUnitLogicUse:            {"UNIT_LOGIC_USE", format.SectionByte},
	IDVssCommands:             {"VSS_COMMANDS", format.SectionString},
	IDDirectoryElements:       {"DIRICTORY_ELEMENTS", format.SectionRecord},
	IDLeverIsDoor:             {"LEVER_IS_DOOR", format.SectionByte},
	IDUnitArmors:              {"UNIT_ARMORS", format.SectionStringArray},
	IDUnitLogicRevenge:        {"UNIT_LOGIC_REVENGE", format.SectionNull},
	IDDirectory:               {"DIRICTORY", format.SectionRecord},
	IDScriptTextOld:           {"SS_TEXT_OLD", format.SectionString},
	IDLeverRecalcGraph:        {"LEVER_RECALC_GRAPH", format.SectionByte},
	IDUnitLogicFear:           {"UNIT_LOGIC_FEAR", format.SectionNull},
	IDScObjectDBFile:          {"SC_OBJECTDBFILE", format.SectionNull},
	IDFolder:                  {"FOLDER", format.SectionRecord},
	IDScriptText:              {"SS_TEXT", format.SectionStringEncrypted},
}
